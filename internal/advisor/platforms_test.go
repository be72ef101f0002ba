package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sui-advisor/internal/types"
)

func TestPlatformRegistryLookup(t *testing.T) {
	registry := NewPlatformRegistry()

	platform, ok := registry.Lookup("cetus")
	require.True(t, ok)
	assert.Equal(t, "Cetus Protocol", platform.Name)
	assert.Equal(t, "DEX/AMM", platform.Type)

	platform, ok = registry.Lookup("NAVI")
	require.True(t, ok)
	assert.Equal(t, "NAVI Protocol", platform.Name)

	_, ok = registry.Lookup("unknown")
	assert.False(t, ok)
}

func TestDetectTokenHoldings(t *testing.T) {
	registry := NewPlatformRegistry()

	balances := []types.CoinBalance{
		{CoinType: "0x2::sui::SUI", CoinObjectCount: 3, TotalBalance: "5000000000"},
		{CoinType: "0xa99b::navx::NAVX", CoinObjectCount: 1, TotalBalance: "120000"},
	}

	detected := registry.Detect(balances, nil)

	require.Len(t, detected.TokenHoldings, 1)
	assert.Equal(t, "NAVX", detected.TokenHoldings[0].Token)
	assert.Equal(t, "NAVI Protocol", detected.TokenHoldings[0].Platform)
	assert.Equal(t, "120000", detected.TokenHoldings[0].Balance)

	require.Len(t, detected.ActivePlatforms, 1)
	assert.Equal(t, "Lending/Borrowing", detected.ActivePlatforms[0].Type)
}

func TestDetectPositionsByPackageID(t *testing.T) {
	registry := NewPlatformRegistry()

	objects := []types.OwnedObject{
		{
			ObjectID: "0xabc",
			Type:     "0x1eabed72c53feb3805120a081dc15963c204dc8d091542592abaf7a35689b2fb::pool::Position",
		},
		{
			ObjectID: "0xdef",
			Type:     "0x2::coin::Coin<0x2::sui::SUI>",
		},
	}

	detected := registry.Detect(nil, objects)

	require.Len(t, detected.DeFiPositions, 1)
	position := detected.DeFiPositions[0]
	assert.Equal(t, "Cetus Protocol", position.Platform)
	assert.Equal(t, "Liquidity Position", position.PositionType)
	assert.Equal(t, "0xabc", position.ObjectID)
}

func TestDetectLendingPosition(t *testing.T) {
	registry := NewPlatformRegistry()

	objects := []types.OwnedObject{
		{
			ObjectID: "0x99",
			Type:     "0xa99b8952d4f7d947ea77fe0ecdcc9e5fc0bcab2841d6e2a5aa00c3044e5544b5::borrow::Obligation",
		},
	}

	detected := registry.Detect(nil, objects)

	require.Len(t, detected.DeFiPositions, 1)
	assert.Equal(t, "NAVI Protocol", detected.DeFiPositions[0].Platform)
	assert.Equal(t, "Lending Position", detected.DeFiPositions[0].PositionType)
}

func TestIdentifyPositionType(t *testing.T) {
	tests := []struct {
		objectType string
		want       string
	}{
		{"0xpkg::pool::Position", "Liquidity Position"},
		{"0xpkg::lp_token::LP", "Liquidity Position"},
		{"0xpkg::staking::StakedSui", "Staking Position"},
		{"0xpkg::borrow::Obligation", "Lending Position"},
		{"0xpkg::vault::Vault", "Vault Position"},
		{"0xpkg::farm::Farm", "Farming Position"},
		{"0xpkg::misc::Thing", "DeFi Position"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, identifyPositionType(tt.objectType), tt.objectType)
	}
}

func TestRecommendationsNoDeFiActivity(t *testing.T) {
	registry := NewPlatformRegistry()

	detected := registry.Detect(nil, nil)

	require.NotEmpty(t, detected.Recommendations)
	assert.Contains(t, detected.Recommendations[0], "haven't started using DeFi")
}

func TestRecommendationsSinglePlatform(t *testing.T) {
	registry := NewPlatformRegistry()

	balances := []types.CoinBalance{
		{CoinType: "0xabc::cetus::CETUS", TotalBalance: "1000"},
	}

	detected := registry.Detect(balances, nil)

	found := false
	for _, rec := range detected.Recommendations {
		if rec == "🌈 Diversify across multiple DeFi platforms" {
			found = true
		}
	}
	assert.True(t, found, "single-platform wallets should be told to diversify")

	// DEX token holdings imply liquidity exposure guidance
	assert.Contains(t, detected.Recommendations, "🌊 Watch for impermanent loss in liquidity positions")
	assert.Contains(t, detected.Recommendations, "🎯 Consider staking platform tokens for additional rewards")
}

func TestRecommendationsMultiplePlatforms(t *testing.T) {
	registry := NewPlatformRegistry()

	balances := []types.CoinBalance{
		{CoinType: "0xabc::cetus::CETUS", TotalBalance: "1000"},
		{CoinType: "0xa99b::navx::NAVX", TotalBalance: "2000"},
	}

	detected := registry.Detect(balances, nil)

	assert.Contains(t, detected.Recommendations, "✅ Good diversification across platforms!")
	assert.Contains(t, detected.Recommendations, "💰 Monitor lending rates and adjust positions")
}

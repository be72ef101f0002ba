package advisor

import (
	"strings"

	"github.com/sui-advisor/internal/types"
)

// Platform describes a known DeFi platform on Sui
type Platform struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	PackageIDs  []string `json:"packageIds"`
	CoinTypes   []string `json:"coinTypes"`
	Features    []string `json:"features"`
}

// Platform type constants used for type-specific recommendations
const (
	platformTypeLending     = "Lending/Borrowing"
	platformTypeDEX         = "DEX/AMM"
	platformTypeOrderbook   = "DEX/Orderbook"
	platformTypeNFT         = "NFT/DeFi"
	platformTypeDerivatives = "Derivatives/Perps"
)

// ActivePlatform represents a platform the wallet holds tokens of
type ActivePlatform struct {
	Platform string `json:"platform"`
	Type     string `json:"type"`
	Token    string `json:"token"`
	Balance  string `json:"balance"`
}

// TokenHolding represents a platform token balance held by the wallet
type TokenHolding struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
	Balance  string `json:"balance"`
}

// DeFiPosition represents an on-chain position object issued by a platform
type DeFiPosition struct {
	Platform     string `json:"platform"`
	Type         string `json:"type"`
	PositionType string `json:"positionType"`
	ObjectID     string `json:"objectId"`
}

// PlatformDetection is the result of matching a wallet's holdings and
// objects against the platform registry
type PlatformDetection struct {
	ActivePlatforms []ActivePlatform `json:"activePlatforms"`
	TokenHoldings   []TokenHolding   `json:"tokenHoldings"`
	DeFiPositions   []DeFiPosition   `json:"defiPositions"`
	Recommendations []string         `json:"recommendations"`
}

// PlatformRegistry matches wallet holdings against known Sui DeFi platforms
type PlatformRegistry struct {
	platforms []Platform
}

// NewPlatformRegistry creates a registry preloaded with the major Sui DeFi
// platforms
func NewPlatformRegistry() *PlatformRegistry {
	return &PlatformRegistry{platforms: defaultPlatforms()}
}

// Platforms returns the full platform catalogue
func (r *PlatformRegistry) Platforms() []Platform {
	return r.platforms
}

// Lookup returns the platform with the given slug, if registered
func (r *PlatformRegistry) Lookup(slug string) (*Platform, bool) {
	slug = strings.ToLower(slug)
	for i := range r.platforms {
		if r.platforms[i].Slug == slug {
			return &r.platforms[i], true
		}
	}
	return nil, false
}

// Detect matches coin balances against platform token fragments and owned
// objects against platform package IDs
func (r *PlatformRegistry) Detect(balances []types.CoinBalance, objects []types.OwnedObject) PlatformDetection {
	detected := PlatformDetection{
		ActivePlatforms: make([]ActivePlatform, 0),
		TokenHoldings:   make([]TokenHolding, 0),
		DeFiPositions:   make([]DeFiPosition, 0),
	}

	for _, balance := range balances {
		coinType := strings.ToLower(balance.CoinType)
		for _, platform := range r.platforms {
			for _, token := range platform.CoinTypes {
				if !strings.Contains(coinType, strings.ToLower(token)) {
					continue
				}
				detected.ActivePlatforms = append(detected.ActivePlatforms, ActivePlatform{
					Platform: platform.Name,
					Type:     platform.Type,
					Token:    strings.ToUpper(token),
					Balance:  balance.TotalBalance,
				})
				detected.TokenHoldings = append(detected.TokenHoldings, TokenHolding{
					Token:    strings.ToUpper(token),
					Platform: platform.Name,
					Balance:  balance.TotalBalance,
				})
			}
		}
	}

	for _, object := range objects {
		objectType := strings.ToLower(object.Type)
		if objectType == "" {
			continue
		}
		for _, platform := range r.platforms {
			for _, packageID := range platform.PackageIDs {
				if !strings.Contains(objectType, strings.ToLower(packageID)) {
					continue
				}
				detected.DeFiPositions = append(detected.DeFiPositions, DeFiPosition{
					Platform:     platform.Name,
					Type:         platform.Type,
					PositionType: identifyPositionType(objectType),
					ObjectID:     object.ObjectID,
				})
			}
		}
	}

	detected.Recommendations = r.recommend(&detected)

	return detected
}

// identifyPositionType infers the kind of DeFi position from type-name
// fragments
func identifyPositionType(objectType string) string {
	switch {
	case strings.Contains(objectType, "pool") || strings.Contains(objectType, "lp"):
		return "Liquidity Position"
	case strings.Contains(objectType, "stake") || strings.Contains(objectType, "staking"):
		return "Staking Position"
	case strings.Contains(objectType, "borrow") || strings.Contains(objectType, "loan"):
		return "Lending Position"
	case strings.Contains(objectType, "vault"):
		return "Vault Position"
	case strings.Contains(objectType, "farm"):
		return "Farming Position"
	default:
		return "DeFi Position"
	}
}

// recommend generates guidance tiered on how many platforms were detected,
// plus platform-type-specific additions
func (r *PlatformRegistry) recommend(detected *PlatformDetection) []string {
	var recommendations []string

	switch {
	case len(detected.ActivePlatforms) == 0 && len(detected.DeFiPositions) == 0:
		recommendations = append(recommendations,
			"🚀 You haven't started using DeFi on Sui yet!",
			"💡 Consider starting with NAVI Protocol for lending",
			"🔄 Try Cetus DEX for token swapping",
			"📚 Research the Sui DeFi ecosystem before investing",
		)
	case len(detected.ActivePlatforms) == 1:
		recommendations = append(recommendations,
			"🌈 Diversify across multiple DeFi platforms",
			"⚖️ Don't put all funds in one protocol",
			"🔍 Explore other Sui DeFi opportunities",
		)
	default:
		recommendations = append(recommendations,
			"✅ Good diversification across platforms!",
			"📊 Monitor your positions regularly",
			"🔄 Consider rebalancing periodically",
		)
	}

	seenTypes := make(map[string]bool)
	for _, platform := range detected.ActivePlatforms {
		seenTypes[platform.Type] = true
	}

	if seenTypes[platformTypeLending] {
		recommendations = append(recommendations, "💰 Monitor lending rates and adjust positions")
	}
	if seenTypes[platformTypeDEX] {
		recommendations = append(recommendations, "🌊 Watch for impermanent loss in liquidity positions")
	}
	if len(detected.TokenHoldings) > 0 {
		recommendations = append(recommendations, "🎯 Consider staking platform tokens for additional rewards")
	}

	return recommendations
}

// defaultPlatforms returns the registry of major DeFi platforms on Sui with
// their package IDs and token fragments
func defaultPlatforms() []Platform {
	return []Platform{
		{
			Slug:        "navi",
			Name:        "NAVI Protocol",
			Type:        platformTypeLending,
			Description: "Leading lending protocol on Sui",
			PackageIDs: []string{
				"0xa99b8952d4f7d947ea77fe0ecdcc9e5fc0bcab2841d6e2a5aa00c3044e5544b5",
			},
			CoinTypes: []string{"navi", "navx"},
			Features:  []string{"Lending", "Borrowing", "Yield Farming"},
		},
		{
			Slug:        "cetus",
			Name:        "Cetus Protocol",
			Type:        platformTypeDEX,
			Description: "Concentrated liquidity DEX on Sui",
			PackageIDs: []string{
				"0x1eabed72c53feb3805120a081dc15963c204dc8d091542592abaf7a35689b2fb",
				"0x0868b71c0cba55bf0faf6c40df8c179c67a4d0ba0e79965b68b3d72d7dfbf666",
			},
			CoinTypes: []string{"cetus"},
			Features:  []string{"DEX", "Liquidity Pools", "Concentrated Liquidity"},
		},
		{
			Slug:        "suilend",
			Name:        "Suilend",
			Type:        "Lending",
			Description: "Decentralized lending protocol",
			PackageIDs: []string{
				"0xf95b06141ed4a174f239417323bde3f209b972f5930d8521ea38a52aff3a6ddf",
			},
			CoinTypes: []string{"slnd"},
			Features:  []string{"Lending", "Borrowing"},
		},
		{
			Slug:        "scallop",
			Name:        "Scallop",
			Type:        "Lending/DeFi",
			Description: "Multi-feature DeFi protocol",
			PackageIDs: []string{
				"0xefe8b36d5b2e43728cc323298626b83177803521d195cfb11e15b910e892fddf",
			},
			CoinTypes: []string{"sca", "scallop"},
			Features:  []string{"Lending", "Staking", "Yield Farming"},
		},
		{
			Slug:        "deepbook",
			Name:        "DeepBook",
			Type:        platformTypeOrderbook,
			Description: "Central limit order book DEX",
			PackageIDs: []string{
				"0x000000000000000000000000000000000000000000000000000000000000dee9",
			},
			CoinTypes: []string{"deep"},
			Features:  []string{"Order Book", "Trading", "Market Making"},
		},
		{
			Slug:        "bluemove",
			Name:        "BlueMove",
			Type:        platformTypeNFT,
			Description: "NFT marketplace with DeFi features",
			PackageIDs: []string{
				"0x5c8657a6009556804585cd667be3b43487062195422ff586333721de0f8baeae",
			},
			CoinTypes: []string{"move"},
			Features:  []string{"NFT Trading", "Staking", "Launchpad"},
		},
		{
			Slug:        "turbos",
			Name:        "Turbos Finance",
			Type:        platformTypeDEX,
			Description: "Concentrated liquidity AMM",
			PackageIDs: []string{
				"0x91bfbc386a41afcfd9b2533058d7e915a1d3829089cc268ff4333d54d6339ca1",
			},
			CoinTypes: []string{"turbos"},
			Features:  []string{"AMM", "Concentrated Liquidity", "Yield Farming"},
		},
		{
			Slug:        "aftermath",
			Name:        "Aftermath Finance",
			Type:        platformTypeDEX,
			Description: "Multi-pool AMM with advanced features",
			PackageIDs: []string{
				"0xefe170ec0be4d762196bedecd7a065816576198a6527c99282a2551aaa7da38c",
				"0x0625dc2cd40aee3998a1d6620de8892964c15066e0a285d8b573910ed4c75d50",
			},
			CoinTypes: []string{"af", "aftermath"},
			Features:  []string{"DEX", "Multi-Pool AMM", "Yield Farming", "Liquidity Mining"},
		},
		{
			Slug:        "bluefin",
			Name:        "Bluefin",
			Type:        platformTypeDerivatives,
			Description: "Decentralized derivatives and perpetuals exchange",
			PackageIDs: []string{
				"0xe1b4d32bc4747a6f2d99d5b7a5b4b4b4b4b4b4b4b4b4b4b4b4b4b4b4b4b4b4b4",
			},
			CoinTypes: []string{"blue", "bluefin"},
			Features:  []string{"Perpetuals", "Derivatives", "Margin Trading", "Order Book"},
		},
	}
}

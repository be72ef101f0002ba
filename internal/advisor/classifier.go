// Package advisor implements portfolio analysis, staking opportunity
// assembly, DeFi platform detection, and report rendering over ledger data
// fetched from a Sui fullnode.
package advisor

import (
	"fmt"

	"github.com/sui-advisor/internal/types"
)

// Classification is the result of classifying raw portfolio counts
type Classification struct {
	RiskLevel       types.RiskLevel `json:"riskLevel"`
	Insights        []string        `json:"insights"`
	Recommendations []string        `json:"recommendations"`
}

// PortfolioClassifier maps raw balance and object counts to a risk bucket,
// insights, and recommendations. Implementations must be pure: no I/O, no
// logging, no state, identical output for identical input.
type PortfolioClassifier interface {
	Classify(coinCount, uniqueCoinTypes, objectsOwned int) Classification
}

// ThresholdClassifier classifies portfolios by fixed coin-count thresholds.
// Risk is a step function of the balance-entry count alone:
// 0-1 entries High, 2-3 Medium, 4+ Low.
type ThresholdClassifier struct{}

// NewThresholdClassifier creates the standard threshold classifier
func NewThresholdClassifier() *ThresholdClassifier {
	return &ThresholdClassifier{}
}

// Classify is total over non-negative inputs; negative counts are treated
// as zero rather than rejected.
func (c *ThresholdClassifier) Classify(coinCount, uniqueCoinTypes, objectsOwned int) Classification {
	if coinCount < 0 {
		coinCount = 0
	}
	if objectsOwned < 0 {
		objectsOwned = 0
	}

	result := Classification{
		RiskLevel:       riskForCoinCount(coinCount),
		Insights:        make([]string, 0, 4),
		Recommendations: recommendationsForCoinCount(coinCount),
	}

	// Insight conditions are independent; every matching insight is emitted
	// in a fixed order.
	switch {
	case coinCount == 0:
		result.Insights = append(result.Insights, "⚠️ Empty portfolio - consider acquiring some SUI tokens")
	case coinCount <= 3:
		result.Insights = append(result.Insights, "📊 Limited diversification - consider adding more asset types")
	default:
		result.Insights = append(result.Insights, "✅ Good diversification across multiple assets")
	}

	if objectsOwned > 0 {
		result.Insights = append(result.Insights, fmt.Sprintf("🎨 You own %d objects", objectsOwned))
	}

	result.Insights = append(result.Insights, "💰 Staking SUI tokens is a simple way to earn passive income")

	return result
}

func riskForCoinCount(coinCount int) types.RiskLevel {
	switch {
	case coinCount <= 1:
		return types.RiskHigh
	case coinCount <= 3:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// recommendationsForCoinCount follows the same bucket boundaries as the risk
// table: empty portfolios get starter guidance, High/Medium portfolios get
// the diversify-and-stake pair, Low-risk portfolios get rebalancing and yield
// exploration.
func recommendationsForCoinCount(coinCount int) []string {
	switch {
	case coinCount == 0:
		return []string{
			"🚀 Start by acquiring some SUI tokens",
			"📚 Learn about the Sui ecosystem and available DeFi protocols",
			"💼 Consider dollar-cost averaging into your first positions",
		}
	case coinCount <= 3:
		return []string{
			"🌈 Diversify into stablecoins for stability",
			"💰 Start staking SUI tokens for passive income",
			"🔍 Explore Sui DeFi protocols for yield opportunities",
		}
	default:
		return []string{
			"⚖️ Review portfolio balance regularly",
			"📈 Consider yield farming opportunities",
			"🛡️ Keep some stablecoins for stability",
			"🔄 Rebalance portfolio quarterly",
		}
	}
}

package advisor

import (
	"fmt"
	"strings"
	"time"
)

const (
	reportRuleHeavy = "=================================================="
	reportRuleLight = "------------------------------"
)

// RenderReport formats the combined portfolio and staking report as plain
// text. Failed sections are rendered as error lines so a single provider
// outage does not blank the whole report.
func RenderReport(address string, analysis *PortfolioAnalysis, analysisErr error, staking *StakingOpportunities, stakingErr error) string {
	var b strings.Builder

	b.WriteString("\n🏦 SUI DEFI ADVISOR REPORT\n")
	b.WriteString(reportRuleHeavy + "\n\n")
	fmt.Fprintf(&b, "📍 Address: %s\n\n", address)

	b.WriteString("📊 PORTFOLIO ANALYSIS:\n")
	b.WriteString(reportRuleLight + "\n")

	if analysisErr != nil {
		fmt.Fprintf(&b, "  ❌ %v\n", analysisErr)
	} else if analysis != nil {
		fmt.Fprintf(&b, "\n• Total Coin Types: %d\n", analysis.Summary.TotalCoinTypes)
		fmt.Fprintf(&b, "• Unique Assets: %d\n", analysis.Summary.UniqueCoinTypes)
		fmt.Fprintf(&b, "• Objects Owned: %d\n", analysis.Summary.ObjectsOwned)
		fmt.Fprintf(&b, "• Risk Level: %s\n", analysis.Summary.RiskLevel)

		b.WriteString("\n💡 KEY INSIGHTS:\n")
		for _, insight := range analysis.Insights {
			fmt.Fprintf(&b, "  %s\n", insight)
		}

		b.WriteString("\n🎯 RECOMMENDATIONS:\n")
		for _, rec := range analysis.Recommendations {
			fmt.Fprintf(&b, "  %s\n", rec)
		}
	}

	b.WriteString("\n💰 STAKING OPPORTUNITIES:\n")
	b.WriteString(reportRuleLight + "\n")

	if stakingErr != nil {
		fmt.Fprintf(&b, "  ❌ %v\n", stakingErr)
	} else if staking != nil {
		for _, rec := range staking.Recommendations {
			fmt.Fprintf(&b, "  %s\n", rec)
		}
		fmt.Fprintf(&b, "\n⛽ Gas Price: %d\n", staking.GasCostAnalysis.CurrentGasPrice)
		fmt.Fprintf(&b, "  %s\n", staking.GasCostAnalysis.Recommendation)
	}

	b.WriteString("\n" + reportRuleHeavy + "\n")
	b.WriteString("🤖 Report generated by Sui DeFi Advisor\n")
	fmt.Fprintf(&b, "📅 Generated: %s\n", time.Now().UTC().Format(time.RFC3339))

	return b.String()
}

// RenderPlatformsReport formats the DeFi platform detection report for an
// address, followed by the full platform catalogue.
func RenderPlatformsReport(address string, catalogue []Platform, detected *PlatformDetection, detectErr error) string {
	var b strings.Builder

	b.WriteString("\n🏗️ SUI DEFI PLATFORMS REPORT\n")
	b.WriteString(reportRuleHeavy + "\n\n")
	fmt.Fprintf(&b, "📍 Address: %s\n\n", address)

	b.WriteString("🔍 PLATFORM INTERACTIONS:\n")
	b.WriteString(reportRuleLight + "\n")

	if detectErr != nil {
		fmt.Fprintf(&b, "  ❌ %v\n", detectErr)
	} else if detected != nil {
		if len(detected.ActivePlatforms) > 0 {
			b.WriteString("\n🎯 ACTIVE PLATFORMS:\n")
			for _, platform := range detected.ActivePlatforms {
				fmt.Fprintf(&b, "  • %s (%s)\n", platform.Platform, platform.Type)
				fmt.Fprintf(&b, "    Token: %s | Balance: %s\n", platform.Token, platform.Balance)
			}
		}

		if len(detected.DeFiPositions) > 0 {
			b.WriteString("\n💼 DEFI POSITIONS:\n")
			for _, position := range detected.DeFiPositions {
				fmt.Fprintf(&b, "  • %s: %s\n", position.Platform, position.PositionType)
			}
		}

		if len(detected.TokenHoldings) > 0 {
			b.WriteString("\n🪙 PLATFORM TOKENS:\n")
			for _, holding := range detected.TokenHoldings {
				fmt.Fprintf(&b, "  • %s (%s): %s\n", holding.Token, holding.Platform, holding.Balance)
			}
		}

		if len(detected.ActivePlatforms) == 0 && len(detected.DeFiPositions) == 0 {
			b.WriteString("\n📋 No DeFi platform interactions detected\n")
			b.WriteString("💡 This could mean you're new to Sui DeFi or using different platforms\n")
		}

		b.WriteString("\n🎯 RECOMMENDATIONS:\n")
		for _, rec := range detected.Recommendations {
			fmt.Fprintf(&b, "  %s\n", rec)
		}
	}

	b.WriteString("\n📚 AVAILABLE PLATFORMS ON SUI:\n")
	b.WriteString(reportRuleLight + "\n")
	for _, platform := range catalogue {
		fmt.Fprintf(&b, "\n🏗️ %s (%s)\n", platform.Name, platform.Type)
		fmt.Fprintf(&b, "   %s\n", platform.Description)
		fmt.Fprintf(&b, "   Features: %s\n", strings.Join(platform.Features, ", "))
	}

	b.WriteString("\n" + reportRuleHeavy + "\n")
	b.WriteString("🤖 Report generated by Sui DeFi Platforms Detector\n")
	b.WriteString("📅 Analysis complete\n")

	return b.String()
}

package advisor

import (
	"context"
	"strings"

	apperrors "github.com/sui-advisor/internal/errors"
	"github.com/sui-advisor/internal/logging"
	"github.com/sui-advisor/internal/rpc"
	"github.com/sui-advisor/internal/types"
)

const maxReadableCoinNames = 5

// PortfolioSummary aggregates the headline counts of a wallet
type PortfolioSummary struct {
	TotalCoinTypes  int             `json:"totalCoinTypes"`
	UniqueCoinTypes int             `json:"uniqueCoinTypes"`
	ObjectsOwned    int             `json:"objectsOwned"`
	RiskLevel       types.RiskLevel `json:"riskLevel"`
	SpecialObjects  []string        `json:"specialObjects"`
}

// PortfolioAnalysis is the full result of analyzing a wallet address
type PortfolioAnalysis struct {
	Summary         PortfolioSummary `json:"portfolioSummary"`
	Insights        []string         `json:"insights"`
	CoinTypes       []string         `json:"coinTypes"`
	Recommendations []string         `json:"recommendations"`
}

// Advisor orchestrates fullnode queries, classification, and platform
// detection for a wallet address
type Advisor struct {
	ledger     rpc.LedgerClient
	classifier PortfolioClassifier
	staking    *StakingAssembler
	platforms  *PlatformRegistry
	logger     *logging.Logger
}

// NewAdvisor creates an advisor backed by the given ledger client
func NewAdvisor(ledger rpc.LedgerClient, logger *logging.Logger) *Advisor {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Advisor{
		ledger:     ledger,
		classifier: NewThresholdClassifier(),
		staking:    NewStakingAssembler(),
		platforms:  NewPlatformRegistry(),
		logger:     logger,
	}
}

// AnalyzePortfolio fetches a wallet's balances and objects and classifies
// the portfolio. Any provider failure fails the whole analysis; no partial
// results are returned.
func (a *Advisor) AnalyzePortfolio(ctx context.Context, address string) (*PortfolioAnalysis, error) {
	if a.ledger == nil {
		return nil, apperrors.NewClientNotInitializedError(nil)
	}

	log := a.logger.WithField("address", address)
	log.Debug("analyzing portfolio")

	balances, err := a.ledger.GetAllBalances(ctx, address)
	if err != nil {
		log.WithError(err).Error("balance query failed")
		return nil, apperrors.NewQueryFailedError("portfolio analysis", err)
	}

	objects, err := a.ledger.GetOwnedObjects(ctx, address)
	if err != nil {
		log.WithError(err).Error("owned objects query failed")
		return nil, apperrors.NewQueryFailedError("portfolio analysis", err)
	}

	coinTypes := make([]string, 0, len(balances))
	uniqueTypes := make(map[string]struct{}, len(balances))
	for _, balance := range balances {
		coinTypes = append(coinTypes, balance.CoinType)
		uniqueTypes[balance.CoinType] = struct{}{}
	}

	specialObjects := labelSpecialObjects(objects)

	classification := a.classifier.Classify(len(balances), len(uniqueTypes), len(objects))

	insights := classification.Insights
	recommendations := classification.Recommendations

	hasSui := false
	for _, coinType := range coinTypes {
		if strings.Contains(coinType, "sui::SUI") {
			hasSui = true
			break
		}
	}
	hasStablecoins := false
	for _, coinType := range coinTypes {
		lower := strings.ToLower(coinType)
		if strings.Contains(lower, "usdc") || strings.Contains(lower, "usdt") {
			hasStablecoins = true
			break
		}
	}

	if hasSui {
		insights = append(insights, "💰 You have SUI tokens - great for staking!")
		recommendations = append(recommendations, "💰 Consider staking your SUI tokens for passive income")
	}
	if hasStablecoins {
		insights = append(insights, "🛡️ You have stablecoins - good for portfolio stability")
		recommendations = append(recommendations, "🛡️ Consider holding stablecoins for portfolio stability")
	}

	analysis := &PortfolioAnalysis{
		Summary: PortfolioSummary{
			TotalCoinTypes:  len(balances),
			UniqueCoinTypes: len(uniqueTypes),
			ObjectsOwned:    len(objects),
			RiskLevel:       classification.RiskLevel,
			SpecialObjects:  specialObjects,
		},
		Insights:        insights,
		CoinTypes:       readableCoinNames(coinTypes),
		Recommendations: recommendations,
	}

	log.WithFields(map[string]interface{}{
		"coinTypes": len(balances),
		"objects":   len(objects),
		"riskLevel": string(classification.RiskLevel),
	}).Info("portfolio analyzed")

	return analysis, nil
}

// GetStakingOpportunities fetches validator APYs and the reference gas price
// and assembles staking guidance
func (a *Advisor) GetStakingOpportunities(ctx context.Context) (*StakingOpportunities, error) {
	if a.ledger == nil {
		return nil, apperrors.NewClientNotInitializedError(nil)
	}

	validators, err := a.ledger.GetValidatorsApy(ctx)
	if err != nil {
		a.logger.WithError(err).Error("validator APY query failed")
		return nil, apperrors.NewQueryFailedError("staking analysis", err)
	}

	gasPrice, err := a.ledger.GetReferenceGasPrice(ctx)
	if err != nil {
		a.logger.WithError(err).Error("reference gas price query failed")
		return nil, apperrors.NewQueryFailedError("staking analysis", err)
	}

	opportunities := a.staking.Assemble(gasPrice, validators)
	return &opportunities, nil
}

// DetectPlatforms matches a wallet's holdings and objects against the
// known Sui DeFi platform registry
func (a *Advisor) DetectPlatforms(ctx context.Context, address string) (*PlatformDetection, error) {
	if a.ledger == nil {
		return nil, apperrors.NewClientNotInitializedError(nil)
	}

	balances, err := a.ledger.GetAllBalances(ctx, address)
	if err != nil {
		a.logger.WithError(err).Error("balance query failed")
		return nil, apperrors.NewQueryFailedError("platform detection", err)
	}

	objects, err := a.ledger.GetOwnedObjects(ctx, address)
	if err != nil {
		a.logger.WithError(err).Error("owned objects query failed")
		return nil, apperrors.NewQueryFailedError("platform detection", err)
	}

	detected := a.platforms.Detect(balances, objects)
	return &detected, nil
}

// GenerateReport produces the combined text report for an address. Section
// failures are rendered into the report rather than failing it.
func (a *Advisor) GenerateReport(ctx context.Context, address string) (string, error) {
	analysis, analysisErr := a.AnalyzePortfolio(ctx, address)
	staking, stakingErr := a.GetStakingOpportunities(ctx)
	return RenderReport(address, analysis, analysisErr, staking, stakingErr), nil
}

// GeneratePlatformsReport produces the text DeFi platform report for an
// address
func (a *Advisor) GeneratePlatformsReport(ctx context.Context, address string) (string, error) {
	detected, err := a.DetectPlatforms(ctx, address)
	return RenderPlatformsReport(address, a.platforms.Platforms(), detected, err), nil
}

// labelSpecialObjects labels notable owned objects by type-name fragments.
// Coin objects are skipped since balances already cover them.
func labelSpecialObjects(objects []types.OwnedObject) []string {
	labels := make([]string, 0)
	for _, object := range objects {
		objectType := strings.ToLower(object.Type)
		switch {
		case objectType == "":
			continue
		case strings.Contains(objectType, "suins_registration"):
			labels = append(labels, "SuiNS Domain")
		case strings.Contains(objectType, "vote"):
			labels = append(labels, "Voting NFT")
		case strings.Contains(objectType, "upgradecap"):
			labels = append(labels, "Package Upgrade Cap")
		case strings.Contains(objectType, "coin::coin"):
			continue
		default:
			labels = append(labels, "DeFi Position")
		}
	}
	return labels
}

// readableCoinNames shortens fully-qualified coin types to their last path
// segment, capped at the first few entries
func readableCoinNames(coinTypes []string) []string {
	names := make([]string, 0, maxReadableCoinNames)
	for _, coinType := range coinTypes {
		if len(names) >= maxReadableCoinNames {
			break
		}
		if idx := strings.LastIndex(coinType, "::"); idx >= 0 {
			names = append(names, coinType[idx+2:])
		} else {
			names = append(names, coinType)
		}
	}
	return names
}

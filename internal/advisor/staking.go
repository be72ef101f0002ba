package advisor

import (
	"github.com/sui-advisor/internal/types"
)

// lowGasThreshold is the reference gas price (in MIST) below which
// transactions are considered cheap enough to recommend acting now.
const lowGasThreshold = 1000

// GasCostAnalysis summarizes the current gas price with a timing hint
type GasCostAnalysis struct {
	CurrentGasPrice uint64 `json:"currentGasPrice"`
	Recommendation  string `json:"recommendation"`
}

// StakingOpportunities bundles gas cost analysis with the validator set and
// general staking guidance
type StakingOpportunities struct {
	TopValidators   []types.ValidatorAPY `json:"topValidators"`
	GasCostAnalysis GasCostAnalysis      `json:"gasCostAnalysis"`
	Recommendations []string             `json:"recommendations"`
}

// StakingAssembler combines a gas price reading with the validator APY set
// into a recommendation bundle
type StakingAssembler struct{}

// NewStakingAssembler creates a staking opportunity assembler
func NewStakingAssembler() *StakingAssembler {
	return &StakingAssembler{}
}

// Assemble builds the staking bundle. Validators pass through in provider
// order; no ranking is applied.
func (a *StakingAssembler) Assemble(gasPrice uint64, validators []types.ValidatorAPY) StakingOpportunities {
	if validators == nil {
		validators = []types.ValidatorAPY{}
	}

	recommendation := "High gas costs - consider waiting"
	if gasPrice < lowGasThreshold {
		recommendation = "Low gas costs - good time for transactions"
	}

	return StakingOpportunities{
		TopValidators: validators,
		GasCostAnalysis: GasCostAnalysis{
			CurrentGasPrice: gasPrice,
			Recommendation:  recommendation,
		},
		Recommendations: []string{
			"💡 Staking SUI tokens can provide passive income",
			"🎯 Look for validators with high APY and good performance",
			"⚖️ Consider validator commission rates and uptime",
			"🔄 Diversify across multiple validators to reduce risk",
		},
	}
}

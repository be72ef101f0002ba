package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sui-advisor/internal/types"
)

func TestAssemble_EmptyValidators(t *testing.T) {
	assembler := NewStakingAssembler()

	result := assembler.Assemble(1000, nil)

	assert.Equal(t, uint64(1000), result.GasCostAnalysis.CurrentGasPrice)
	assert.NotNil(t, result.TopValidators)
	assert.Empty(t, result.TopValidators)
	assert.NotEmpty(t, result.Recommendations)
}

func TestAssemble_GasTiming(t *testing.T) {
	assembler := NewStakingAssembler()

	tests := []struct {
		name     string
		gasPrice uint64
		wantLow  bool
	}{
		{"well below threshold", 100, true},
		{"just below threshold", 999, true},
		{"at threshold", 1000, false},
		{"above threshold", 5000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := assembler.Assemble(tt.gasPrice, nil)
			if tt.wantLow {
				assert.Contains(t, result.GasCostAnalysis.Recommendation, "Low gas costs")
			} else {
				assert.Contains(t, result.GasCostAnalysis.Recommendation, "High gas costs")
			}
		})
	}
}

func TestAssemble_ValidatorsPassThrough(t *testing.T) {
	assembler := NewStakingAssembler()

	validators := []types.ValidatorAPY{
		{Address: "0xv2", APY: 0.021},
		{Address: "0xv1", APY: 0.049},
		{Address: "0xv3", APY: 0.035},
	}

	result := assembler.Assemble(900, validators)

	// Provider order is preserved: no ranking is applied
	assert.Equal(t, validators, result.TopValidators)
}

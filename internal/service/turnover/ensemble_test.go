package turnover

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/turnover"
)

func TestEnsembleScore_ExactArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule, inference, behavior int
		want                      int
	}{
		{0, 0, 0, 0},
		{100, 100, 100, 100},
		{100, 50, 65, 70},  // 30 + 20 + 19.5 = 69.5 rounds up
		{0, 50, 0, 20},     // neutral inference alone
		{35, 50, 0, 31},    // 10.5 + 20 = 30.5 rounds up
		{50, 50, 50, 50},
		{20, 80, 40, 50},   // 6 + 32 + 12
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ensembleScore(tt.rule, tt.inference, tt.behavior),
			"ensemble(%d, %d, %d)", tt.rule, tt.inference, tt.behavior)
	}
}

func TestClassifyRisk_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  turnover.RiskLevel
	}{
		{0, turnover.RiskLevelLow},
		{29, turnover.RiskLevelLow},
		{30, turnover.RiskLevelMedium},
		{49, turnover.RiskLevelMedium},
		{50, turnover.RiskLevelHigh},
		{69, turnover.RiskLevelHigh},
		{70, turnover.RiskLevelCritical},
		{100, turnover.RiskLevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyRisk(tt.score), "score %d", tt.score)
	}
}

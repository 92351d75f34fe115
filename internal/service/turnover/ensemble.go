package turnover

import (
	"math"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/turnover"
)

// Ensemble weights. The inference model carries the largest share since
// it sees the full feature summary at once.
const (
	ruleWeight      = 0.3
	inferenceWeight = 0.4
	behaviorWeight  = 0.3
)

func ensembleScore(rule, inference, behavior int) int {
	return int(math.Round(float64(rule)*ruleWeight +
		float64(inference)*inferenceWeight +
		float64(behavior)*behaviorWeight))
}

// classifyRisk buckets a final score. Boundaries are inclusive on the
// lower side: exactly 30 is medium, exactly 70 is critical.
func classifyRisk(score int) turnover.RiskLevel {
	switch {
	case score < 30:
		return turnover.RiskLevelLow
	case score < 50:
		return turnover.RiskLevelMedium
	case score < 70:
		return turnover.RiskLevelHigh
	default:
		return turnover.RiskLevelCritical
	}
}

package turnover

import "github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/turnover"

const maxModelScore = 100

// ruleBasedScore applies the additive rule table. It also reports which
// rules fired, which is logged for traceability but never blended into
// the result's key factors.
func ruleBasedScore(feat turnover.EmployeeFeature) (int, []string) {
	score := 0
	var factors []string

	if feat.PerformanceTrend < -10 {
		score += 20
		factors = append(factors, "绩效持续下降")
	}
	if feat.AttendanceRate < 85 {
		score += 15
		factors = append(factors, "出勤率偏低")
	}
	if feat.PerformanceVariance > 20 {
		score += 10
		factors = append(factors, "绩效波动较大")
	}
	if feat.StressLevel > 70 {
		score += 15
		factors = append(factors, "工作压力大")
	}
	if feat.SatisfactionScore < 60 {
		score += 20
		factors = append(factors, "满意度偏低")
	}
	if feat.InterviewCount > 3 {
		score += 25
		factors = append(factors, "频繁参与面试")
	}

	return min(score, maxModelScore), factors
}

// behaviorBasedScore scores job-hunting and burnout signals.
func behaviorBasedScore(feat turnover.EmployeeFeature) int {
	score := 0

	if feat.InterviewCount >= 3 {
		score += 30
	}
	if feat.TrainingCompletionRate < 50 {
		score += 20
	}
	if feat.OvertimeHours > 20 {
		score += 15
	}

	return min(score, maxModelScore)
}

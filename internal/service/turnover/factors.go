package turnover

import "github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/turnover"

// inferenceUnavailableFactor marks results whose inference score fell
// back to neutral, emitted only under the "flag" fallback policy.
const inferenceUnavailableFactor = "推理服务不可用"

// keyFactors is recomputed from raw features, not from which sub-model
// fired. Attributing factors per sub-model reads better on paper but the
// feature thresholds are what managers can actually act on.
func keyFactors(feat turnover.EmployeeFeature) []turnover.KeyFactor {
	var factors []turnover.KeyFactor

	if feat.PerformanceTrend < -10 {
		factors = append(factors, turnover.KeyFactor{Factor: "绩效持续下降", Impact: turnover.ImpactNegative, Weight: 20})
	}
	if feat.AttendanceRate < 85 {
		factors = append(factors, turnover.KeyFactor{Factor: "出勤率偏低", Impact: turnover.ImpactNegative, Weight: 15})
	}
	if feat.StressLevel > 70 {
		factors = append(factors, turnover.KeyFactor{Factor: "工作压力大", Impact: turnover.ImpactNegative, Weight: 15})
	}
	if feat.SatisfactionScore < 60 {
		factors = append(factors, turnover.KeyFactor{Factor: "满意度偏低", Impact: turnover.ImpactNegative, Weight: 20})
	}
	if feat.InterviewCount > 3 {
		factors = append(factors, turnover.KeyFactor{Factor: "频繁参与面试", Impact: turnover.ImpactNegative, Weight: 25})
	}
	if feat.AvgPerformanceScore > 80 {
		factors = append(factors, turnover.KeyFactor{Factor: "绩效表现优秀", Impact: turnover.ImpactPositive, Weight: -15})
	}
	if feat.EngagementScore > 80 {
		factors = append(factors, turnover.KeyFactor{Factor: "敬业度较高", Impact: turnover.ImpactPositive, Weight: -10})
	}

	return factors
}

// topReasons walks a fixed checklist of likely departure reasons. The
// order encodes descending urgency and is part of the output contract.
func topReasons(feat turnover.EmployeeFeature) []string {
	var reasons []string

	if feat.StressLevel > 70 {
		reasons = append(reasons, "工作压力过大")
	}
	if feat.SatisfactionScore < 60 {
		reasons = append(reasons, "工作满意度不足")
	}
	if feat.PerformanceTrend < -10 {
		reasons = append(reasons, "绩效持续下滑")
	}
	if feat.AttendanceRate < 85 {
		reasons = append(reasons, "出勤状况不佳")
	}
	if feat.InterviewCount > 3 {
		reasons = append(reasons, "可能正在寻找新机会")
	}
	if feat.OvertimeHours > 20 {
		reasons = append(reasons, "长期加班")
	}

	reasons = dedupe(reasons)
	if len(reasons) == 0 {
		reasons = []string{"综合因素"}
	}

	return reasons
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

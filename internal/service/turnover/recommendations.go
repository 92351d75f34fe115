package turnover

import (
	"time"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/turnover"
)

// Warning horizons for actionable risk tiers.
const (
	criticalWarningDays = 30
	highWarningDays     = 90
)

var recommendationsByLevel = map[turnover.RiskLevel][]string{
	turnover.RiskLevelCritical: {
		"立即安排一对一深度面谈，了解真实诉求",
		"上报部门负责人与 HR 负责人",
		"制定个性化挽留方案（薪酬、晋升、调岗）",
		"评估岗位关键性并提前准备继任计划",
	},
	turnover.RiskLevelHigh: {
		"两周内安排绩效与职业发展沟通",
		"关注工作负荷，必要时调整任务分配",
		"提供培训或晋升机会，明确成长路径",
		"加强团队氛围建设，提升归属感",
	},
	turnover.RiskLevelMedium: {
		"保持定期沟通，关注状态变化",
		"适当给予工作认可与激励",
		"提供必要的支持与资源",
	},
	turnover.RiskLevelLow: {
		"维持现有管理方式，持续观察",
	},
}

// recommendations is a static lookup per tier; content is deliberately
// not personalized by which factors triggered.
func recommendations(level turnover.RiskLevel) []string {
	recs := recommendationsByLevel[level]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// warningTime estimates a departure date for actionable tiers and is
// absent otherwise.
func warningTime(level turnover.RiskLevel, now time.Time) *time.Time {
	var days int
	switch level {
	case turnover.RiskLevelCritical:
		days = criticalWarningDays
	case turnover.RiskLevelHigh:
		days = highWarningDays
	default:
		return nil
	}
	t := now.AddDate(0, 0, days)
	return &t
}

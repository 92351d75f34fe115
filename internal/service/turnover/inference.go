package turnover

import (
	"context"
	"fmt"
	"math"

	"github.com/cloudwego/eino/schema"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/turnover"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/pkg/inference"
)

// neutralInferenceScore substitutes for the inference model whenever the
// service is unreachable or its output cannot be parsed. Prediction
// availability wins over accuracy here; the fallback policy decides
// whether the outage is surfaced on the result.
const neutralInferenceScore = 50

func buildInferencePrompt(feat turnover.EmployeeFeature) []*schema.Message {
	systemMsg := &schema.Message{
		Role: schema.System,
		Content: fmt.Sprintf(`你是一位资深的人力资源数据分析专家，擅长根据员工的绩效、出勤和行为数据评估离职风险。

员工特征摘要：
- 司龄：%d 个月
- 年龄：%d 岁
- 职级：%d（1-4，4 为最高）
- 部门：%s
- 平均绩效分：%.1f
- 绩效趋势：%.1f
- 绩效波动（方差）：%.1f
- 最近绩效分：%.1f
- 出勤率：%.1f%%
- 迟到次数：%d
- 早退次数：%d
- 请假次数：%d
- 加班小时数：%.1f
- 担任面试官次数：%d
- 培训完成率：%.1f%%
- 敬业度：%d
- 压力水平：%d
- 满意度：%d`,
			feat.TenureMonths, feat.Age, feat.PositionLevel, feat.Department,
			feat.AvgPerformanceScore, feat.PerformanceTrend, feat.PerformanceVariance,
			feat.RecentPerformanceScore, feat.AttendanceRate, feat.LateCount,
			feat.EarlyLeaveCount, feat.LeaveCount, feat.OvertimeHours,
			feat.InterviewCount, feat.TrainingCompletionRate,
			feat.EngagementScore, feat.StressLevel, feat.SatisfactionScore),
	}

	userMsg := &schema.Message{
		Role: schema.User,
		Content: `请根据以上员工特征评估该员工的离职风险，只输出一个 JSON 对象，` +
			`格式为 {"riskScore": 0到100的数值, "reasoning": "简要分析"}，不要输出任何其他内容。`,
	}

	return []*schema.Message{systemMsg, userMsg}
}

// inferenceBasedScore asks the chat model for a risk score. The returned
// bool reports whether the score came from the model; false means the
// neutral fallback was used.
func (s *TurnoverServiceImpl) inferenceBasedScore(ctx context.Context, feat turnover.EmployeeFeature) (int, bool) {
	resp, err := s.chatModel.Generate(ctx, buildInferencePrompt(feat))
	if err != nil {
		s.logger.Warn("inference call failed, using neutral score",
			"employee_id", feat.EmployeeID, "error", err)
		return neutralInferenceScore, false
	}

	result, err := inference.ParseResult(resp.Content)
	if err != nil {
		s.logger.Warn("inference response unparseable, using neutral score",
			"employee_id", feat.EmployeeID, "error", err)
		return neutralInferenceScore, false
	}

	score := int(math.Round(result.RiskScore))
	if score < 0 {
		score = 0
	}
	if score > maxModelScore {
		score = maxModelScore
	}

	return score, true
}

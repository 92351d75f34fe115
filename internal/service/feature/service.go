package feature

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/attendance"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/employee"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/interview"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/performance"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/turnover"
)

// trainingCompletionPlaceholder stands in until training records are wired
// into the data store. Availability.TrainingCompletionRate stays false so
// consumers can tell the placeholder from a measured rate.
const trainingCompletionPlaceholder = 80.0

const defaultAge = 30

type FeatureExtractorImpl struct {
	employeeRepo    employee.EmployeeRepository
	performanceRepo performance.ReviewRepository
	attendanceRepo  attendance.AttendanceRepository
	interviewRepo   interview.InterviewRepository
	now             func() time.Time
}

func NewFeatureExtractor(
	employeeRepo employee.EmployeeRepository,
	performanceRepo performance.ReviewRepository,
	attendanceRepo attendance.AttendanceRepository,
	interviewRepo interview.InterviewRepository,
) turnover.FeatureExtractor {
	return &FeatureExtractorImpl{
		employeeRepo:    employeeRepo,
		performanceRepo: performanceRepo,
		attendanceRepo:  attendanceRepo,
		interviewRepo:   interviewRepo,
		now:             time.Now,
	}
}

// Extract implements turnover.FeatureExtractor.
func (s *FeatureExtractorImpl) Extract(ctx context.Context, employeeID string, companyID string) (turnover.EmployeeFeature, error) {
	emp, err := s.employeeRepo.GetByIDAndCompanyID(ctx, employeeID, companyID)
	if err != nil {
		return turnover.EmployeeFeature{}, err
	}

	now := s.now()

	feat := turnover.EmployeeFeature{
		EmployeeID:             emp.ID,
		TenureMonths:           tenureMonths(emp.HireDate, now),
		Age:                    ageFromDOB(emp.DOB, now),
		PositionLevel:          positionLevel(emp.PositionTitle),
		Department:             emp.Department,
		TrainingCompletionRate: trainingCompletionPlaceholder,
	}

	reviews, err := s.performanceRepo.ListByEmployeeID(ctx, emp.ID)
	if err != nil {
		return turnover.EmployeeFeature{}, fmt.Errorf("failed to load performance reviews: %w", err)
	}
	applyPerformance(&feat, reviews)

	summary, err := s.attendanceRepo.SummarizeByEmployeeID(ctx, emp.ID)
	if err != nil {
		return turnover.EmployeeFeature{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}
	applyAttendance(&feat, summary)

	interviewCount, err := s.interviewRepo.CountByInterviewerID(ctx, emp.ID)
	if err != nil {
		return turnover.EmployeeFeature{}, fmt.Errorf("failed to count interviews: %w", err)
	}
	feat.InterviewCount = interviewCount

	applyComposites(&feat)

	return feat, nil
}

// tenureMonths counts whole 30-day months between hire date and now.
// An unknown hire date is treated as hired just now.
func tenureMonths(hireDate *time.Time, now time.Time) int {
	if hireDate == nil {
		return 0
	}
	days := now.Sub(*hireDate).Hours() / 24
	if days < 0 {
		return 0
	}
	return int(math.Floor(days / 30))
}

func ageFromDOB(dob *time.Time, now time.Time) int {
	if dob == nil {
		return defaultAge
	}
	age := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		age--
	}
	if age < 0 {
		return defaultAge
	}
	return age
}

// positionLevel maps title keywords to a 1-4 seniority level.
func positionLevel(title string) int {
	t := strings.ToLower(title)
	switch {
	case containsAny(t, "总监", "副总", "总裁", "ceo", "cto", "coo", "vp", "director", "chief"):
		return 4
	case containsAny(t, "经理", "manager", "head"):
		return 3
	case containsAny(t, "主管", "组长", "supervisor", "lead"):
		return 2
	default:
		return 1
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func applyPerformance(feat *turnover.EmployeeFeature, reviews []performance.Review) {
	if len(reviews) == 0 {
		return
	}

	feat.Availability.PerformanceRecords = true

	var sum float64
	for _, rev := range reviews {
		sum += rev.Score
	}
	mean := sum / float64(len(reviews))

	var sqSum float64
	for _, rev := range reviews {
		d := rev.Score - mean
		sqSum += d * d
	}

	feat.AvgPerformanceScore = mean
	feat.PerformanceVariance = sqSum / float64(len(reviews))
	feat.RecentPerformanceScore = reviews[len(reviews)-1].Score
	if len(reviews) >= 2 {
		feat.PerformanceTrend = reviews[len(reviews)-1].Score - reviews[0].Score
	}
}

func applyAttendance(feat *turnover.EmployeeFeature, summary attendance.Summary) {
	// No attendance data means no penalty, not zero attendance.
	feat.AttendanceRate = 100
	if summary.TotalCount > 0 {
		feat.Availability.AttendanceRecords = true
		feat.AttendanceRate = math.Round(float64(summary.PresentCount) / float64(summary.TotalCount) * 100)
	}

	feat.LateCount = summary.LateCount
	feat.EarlyLeaveCount = summary.EarlyLeaveCount
	feat.LeaveCount = summary.LeaveCount

	if summary.OvertimeMinutes != nil {
		feat.Availability.OvertimeHours = true
		feat.OvertimeHours = float64(*summary.OvertimeMinutes) / 60
	}
}

func applyComposites(feat *turnover.EmployeeFeature) {
	feat.EngagementScore = int(math.Round(feat.AvgPerformanceScore*0.6 + feat.AttendanceRate*0.4))

	stress := math.Round((100-feat.AvgPerformanceScore)*0.3 +
		feat.PerformanceVariance*0.2 +
		(100-feat.AttendanceRate)*0.3 +
		float64(feat.LateCount)*5 +
		float64(feat.LeaveCount)*3)
	feat.StressLevel = int(math.Min(100, stress))

	feat.SatisfactionScore = int(math.Round(feat.AvgPerformanceScore*0.7 + feat.TrainingCompletionRate*0.3))
}

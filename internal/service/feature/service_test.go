package feature

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/attendance"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/employee"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/performance"
)

// ===== TEST FAKES =====

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByIDAndCompanyID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.CompanyID == companyID && emp.EmploymentStatus == employee.EmploymentStatusActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakePerformanceRepo struct {
	reviews map[string][]performance.Review
	err     error
}

func (f *fakePerformanceRepo) ListByEmployeeID(_ context.Context, employeeID string) ([]performance.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reviews[employeeID], nil
}

type fakeAttendanceRepo struct {
	summaries map[string]attendance.Summary
}

func (f *fakeAttendanceRepo) SummarizeByEmployeeID(_ context.Context, employeeID string) (attendance.Summary, error) {
	return f.summaries[employeeID], nil
}

type fakeInterviewRepo struct {
	counts map[string]int
}

func (f *fakeInterviewRepo) CountByInterviewerID(_ context.Context, employeeID string) (int, error) {
	return f.counts[employeeID], nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestExtractor(
	employees map[string]employee.Employee,
	reviews map[string][]performance.Review,
	summaries map[string]attendance.Summary,
	counts map[string]int,
) *FeatureExtractorImpl {
	s := NewFeatureExtractor(
		&fakeEmployeeRepo{employees: employees},
		&fakePerformanceRepo{reviews: reviews},
		&fakeAttendanceRepo{summaries: summaries},
		&fakeInterviewRepo{counts: counts},
	).(*FeatureExtractorImpl)
	s.now = func() time.Time { return testNow }
	return s
}

func testEmployee(id, companyID string) employee.Employee {
	hireDate := testNow.AddDate(0, 0, -365)
	return employee.Employee{
		ID:               id,
		CompanyID:        companyID,
		FullName:         "张伟",
		Department:       "研发部",
		PositionTitle:    "软件工程师",
		HireDate:         &hireDate,
		EmploymentStatus: employee.EmploymentStatusActive,
	}
}

func reviewsFromScores(employeeID string, scores ...float64) []performance.Review {
	reviews := make([]performance.Review, 0, len(scores))
	for i, score := range scores {
		reviews = append(reviews, performance.Review{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Score:      score,
			ReviewedAt: testNow.AddDate(0, -len(scores)+i, 0),
		})
	}
	return reviews
}

// ===== FEATURE EXTRACTOR TESTS =====

func TestExtract_NoHistoryUsesNeutralDefaults(t *testing.T) {
	t.Parallel()
	companyID := uuid.NewString()
	emp := testEmployee("emp-1", companyID)

	s := newTestExtractor(
		map[string]employee.Employee{"emp-1": emp},
		nil, nil, nil,
	)

	feat, err := s.Extract(context.Background(), "emp-1", companyID)
	require.NoError(t, err)

	assert.Equal(t, float64(0), feat.AvgPerformanceScore)
	assert.Equal(t, float64(0), feat.PerformanceTrend)
	assert.Equal(t, float64(0), feat.PerformanceVariance)
	assert.Equal(t, float64(0), feat.RecentPerformanceScore)
	// No attendance data is not treated as a penalty.
	assert.Equal(t, float64(100), feat.AttendanceRate)
	assert.Equal(t, float64(0), feat.OvertimeHours)
	assert.Equal(t, float64(80), feat.TrainingCompletionRate)

	assert.False(t, feat.Availability.PerformanceRecords)
	assert.False(t, feat.Availability.AttendanceRecords)
	assert.False(t, feat.Availability.OvertimeHours)
	assert.False(t, feat.Availability.TrainingCompletionRate)

	// engagement = 0*0.6 + 100*0.4, stress = (100-0)*0.3, satisfaction = 80*0.3
	assert.Equal(t, 40, feat.EngagementScore)
	assert.Equal(t, 30, feat.StressLevel)
	assert.Equal(t, 24, feat.SatisfactionScore)
}

func TestExtract_PerformanceAggregation(t *testing.T) {
	t.Parallel()
	companyID := uuid.NewString()
	emp := testEmployee("emp-1", companyID)

	s := newTestExtractor(
		map[string]employee.Employee{"emp-1": emp},
		map[string][]performance.Review{"emp-1": reviewsFromScores("emp-1", 70, 80, 90)},
		nil, nil,
	)

	feat, err := s.Extract(context.Background(), "emp-1", companyID)
	require.NoError(t, err)

	assert.Equal(t, float64(80), feat.AvgPerformanceScore)
	assert.Equal(t, float64(20), feat.PerformanceTrend)
	assert.InDelta(t, 66.667, feat.PerformanceVariance, 0.001)
	assert.Equal(t, float64(90), feat.RecentPerformanceScore)
	assert.True(t, feat.Availability.PerformanceRecords)
}

func TestExtract_SingleReviewHasNoTrend(t *testing.T) {
	t.Parallel()
	companyID := uuid.NewString()
	emp := testEmployee("emp-1", companyID)

	s := newTestExtractor(
		map[string]employee.Employee{"emp-1": emp},
		map[string][]performance.Review{"emp-1": reviewsFromScores("emp-1", 75)},
		nil, nil,
	)

	feat, err := s.Extract(context.Background(), "emp-1", companyID)
	require.NoError(t, err)

	assert.Equal(t, float64(75), feat.AvgPerformanceScore)
	assert.Equal(t, float64(0), feat.PerformanceTrend)
	assert.Equal(t, float64(0), feat.PerformanceVariance)
}

func TestExtract_AttendanceAggregation(t *testing.T) {
	t.Parallel()
	companyID := uuid.NewString()
	emp := testEmployee("emp-1", companyID)
	overtime := 600

	s := newTestExtractor(
		map[string]employee.Employee{"emp-1": emp},
		nil,
		map[string]attendance.Summary{"emp-1": {
			TotalCount:      20,
			PresentCount:    16,
			LateCount:       2,
			EarlyLeaveCount: 1,
			LeaveCount:      1,
			OvertimeMinutes: &overtime,
		}},
		nil,
	)

	feat, err := s.Extract(context.Background(), "emp-1", companyID)
	require.NoError(t, err)

	assert.Equal(t, float64(80), feat.AttendanceRate)
	assert.Equal(t, 2, feat.LateCount)
	assert.Equal(t, 1, feat.EarlyLeaveCount)
	assert.Equal(t, 1, feat.LeaveCount)
	assert.Equal(t, float64(10), feat.OvertimeHours)
	assert.True(t, feat.Availability.AttendanceRecords)
	assert.True(t, feat.Availability.OvertimeHours)
}

func TestExtract_StressLevelIsCapped(t *testing.T) {
	t.Parallel()
	companyID := uuid.NewString()
	emp := testEmployee("emp-1", companyID)

	s := newTestExtractor(
		map[string]employee.Employee{"emp-1": emp},
		nil,
		map[string]attendance.Summary{"emp-1": {
			TotalCount:   30,
			PresentCount: 5,
			LateCount:    20,
			LeaveCount:   5,
		}},
		nil,
	)

	feat, err := s.Extract(context.Background(), "emp-1", companyID)
	require.NoError(t, err)

	assert.Equal(t, 100, feat.StressLevel)
}

func TestExtract_TenureAndAge(t *testing.T) {
	t.Parallel()
	companyID := uuid.NewString()

	hireDate := testNow.AddDate(0, 0, -95)
	dob := time.Date(1992, 3, 1, 0, 0, 0, 0, time.UTC)
	emp := testEmployee("emp-1", companyID)
	emp.HireDate = &hireDate
	emp.DOB = &dob

	noHistory := testEmployee("emp-2", companyID)
	noHistory.HireDate = nil
	noHistory.DOB = nil

	s := newTestExtractor(
		map[string]employee.Employee{"emp-1": emp, "emp-2": noHistory},
		nil, nil, nil,
	)

	feat, err := s.Extract(context.Background(), "emp-1", companyID)
	require.NoError(t, err)
	assert.Equal(t, 3, feat.TenureMonths) // floor(95 / 30)
	assert.Equal(t, 33, feat.Age)

	feat, err = s.Extract(context.Background(), "emp-2", companyID)
	require.NoError(t, err)
	assert.Equal(t, 0, feat.TenureMonths)
	assert.Equal(t, 30, feat.Age)
}

func TestExtract_InterviewCount(t *testing.T) {
	t.Parallel()
	companyID := uuid.NewString()
	emp := testEmployee("emp-1", companyID)

	s := newTestExtractor(
		map[string]employee.Employee{"emp-1": emp},
		nil, nil,
		map[string]int{"emp-1": 4},
	)

	feat, err := s.Extract(context.Background(), "emp-1", companyID)
	require.NoError(t, err)
	assert.Equal(t, 4, feat.InterviewCount)
}

func TestExtract_EmployeeNotInCompany(t *testing.T) {
	t.Parallel()
	emp := testEmployee("emp-1", uuid.NewString())

	s := newTestExtractor(
		map[string]employee.Employee{"emp-1": emp},
		nil, nil, nil,
	)

	_, err := s.Extract(context.Background(), "emp-1", uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestExtract_RepositoryErrorPropagates(t *testing.T) {
	t.Parallel()
	companyID := uuid.NewString()
	emp := testEmployee("emp-1", companyID)

	s := NewFeatureExtractor(
		&fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": emp}},
		&fakePerformanceRepo{err: errors.New("connection reset")},
		&fakeAttendanceRepo{},
		&fakeInterviewRepo{},
	).(*FeatureExtractorImpl)

	_, err := s.Extract(context.Background(), "emp-1", companyID)
	assert.Error(t, err)
}

func TestPositionLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		level int
	}{
		{"技术总监", 4},
		{"VP of Engineering", 4},
		{"产品经理", 3},
		{"Engineering Manager", 3},
		{"测试主管", 2},
		{"Tech Lead", 2},
		{"软件工程师", 1},
		{"", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, positionLevel(tt.title), "title %q", tt.title)
	}
}

package turnover

// EmployeeFeature is the normalized snapshot of one employee's HR history
// that every risk model consumes. It is computed on demand and never
// mutated after extraction.
type EmployeeFeature struct {
	EmployeeID string

	// Demographic / tenure
	TenureMonths  int
	Age           int
	PositionLevel int
	Department    string

	// Performance
	AvgPerformanceScore    float64
	PerformanceTrend       float64
	PerformanceVariance    float64
	RecentPerformanceScore float64

	// Attendance
	AttendanceRate  float64
	LateCount       int
	EarlyLeaveCount int
	LeaveCount      int
	OvertimeHours   float64

	// Behavioral
	InterviewCount         int
	TrainingCompletionRate float64

	// Composite, derived from the fields above
	EngagementScore   int
	StressLevel       int
	SatisfactionScore int

	Availability FeatureAvailability
}

// FeatureAvailability records which inputs were backed by real data.
// A false flag means the corresponding feature holds a default, not a
// confirmed observation.
type FeatureAvailability struct {
	PerformanceRecords     bool
	AttendanceRecords      bool
	OvertimeHours          bool
	TrainingCompletionRate bool
}

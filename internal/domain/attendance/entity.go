package attendance

import "time"

type Attendance struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	Date            time.Time
	ClockIn         *time.Time
	ClockOut        *time.Time
	Status          Status
	LateMinutes     *int
	OvertimeMinutes *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusLeave      Status = "leave"
)

// Summary aggregates an employee's attendance history. OvertimeMinutes is
// nil when no record carries overtime data, so callers can tell a confirmed
// zero apart from data that was never wired.
type Summary struct {
	TotalCount      int
	PresentCount    int
	LateCount       int
	EarlyLeaveCount int
	LeaveCount      int
	OvertimeMinutes *int
}

package attendance

import "context"

type AttendanceRepository interface {
	SummarizeByEmployeeID(ctx context.Context, employeeID string) (Summary, error)
}

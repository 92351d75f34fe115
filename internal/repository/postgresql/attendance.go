package postgresql

import (
	"context"
	"fmt"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/attendance"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// SummarizeByEmployeeID implements attendance.AttendanceRepository.
// The overtime sum stays NULL when no record carries overtime data.
func (a *attendanceRepositoryImpl) SummarizeByEmployeeID(ctx context.Context, employeeID string) (attendance.Summary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4),
			COUNT(*) FILTER (WHERE status = $5),
			SUM(overtime_minutes)
		FROM attendances
		WHERE employee_id = $1
	`

	var summary attendance.Summary
	err := a.db.QueryRow(ctx, query, employeeID,
		attendance.StatusPresent, attendance.StatusLate,
		attendance.StatusEarlyLeave, attendance.StatusLeave,
	).Scan(
		&summary.TotalCount, &summary.PresentCount, &summary.LateCount,
		&summary.EarlyLeaveCount, &summary.LeaveCount, &summary.OvertimeMinutes,
	)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to summarize attendance for employee %s: %w", employeeID, err)
	}

	return summary, nil
}

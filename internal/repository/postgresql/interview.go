package postgresql

import (
	"context"
	"fmt"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/interview"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/pkg/database"
)

type interviewRepositoryImpl struct {
	db *database.DB
}

func NewInterviewRepository(db *database.DB) interview.InterviewRepository {
	return &interviewRepositoryImpl{db: db}
}

// CountByInterviewerID implements interview.InterviewRepository.
func (i *interviewRepositoryImpl) CountByInterviewerID(ctx context.Context, employeeID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM interviews
		WHERE interviewer_id = $1
	`

	var count int
	if err := i.db.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count interviews for employee %s: %w", employeeID, err)
	}

	return count, nil
}

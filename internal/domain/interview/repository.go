package interview

import "context"

type InterviewRepository interface {
	// CountByInterviewerID returns how many interviews the employee has
	// conducted as the interviewer.
	CountByInterviewerID(ctx context.Context, employeeID string) (int, error)
}

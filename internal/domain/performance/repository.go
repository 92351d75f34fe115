package performance

import "context"

type ReviewRepository interface {
	// ListByEmployeeID returns all reviews for the employee in chronological order.
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Review, error)
}

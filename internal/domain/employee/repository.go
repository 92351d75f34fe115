package employee

import "context"

type EmployeeRepository interface {
	// GetByIDAndCompanyID returns the employee only if it belongs to the company.
	GetByIDAndCompanyID(ctx context.Context, id string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}

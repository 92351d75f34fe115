package performance

import "time"

type Review struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Period     string
	Score      float64
	ReviewedBy *string
	ReviewedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

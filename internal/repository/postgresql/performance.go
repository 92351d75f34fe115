package postgresql

import (
	"context"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/performance"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/pkg/database"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.ReviewRepository {
	return &performanceRepositoryImpl{db: db}
}

// ListByEmployeeID implements performance.ReviewRepository.
func (p *performanceRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]performance.Review, error) {
	query := `
		SELECT id, employee_id, company_id, period, score, reviewed_by, reviewed_at,
			created_at, updated_at
		FROM performance_reviews
		WHERE employee_id = $1
		ORDER BY reviewed_at ASC
	`

	rows, err := p.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		var rev performance.Review
		err := rows.Scan(
			&rev.ID, &rev.EmployeeID, &rev.CompanyID, &rev.Period, &rev.Score,
			&rev.ReviewedBy, &rev.ReviewedAt, &rev.CreatedAt, &rev.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

package turnover

import "context"

// TurnoverService is the engine's public surface. Everything else in this
// repository exists to serve these three operations.
type TurnoverService interface {
	// Predict scores a single employee of the company.
	Predict(ctx context.Context, employeeID string, companyID string) (TurnoverRisk, error)

	// BatchPredict scores every active employee of the company, sorted by
	// risk score descending. A failure for one employee is logged and
	// skipped, never aborting the batch.
	BatchPredict(ctx context.Context, companyID string) ([]TurnoverRisk, error)

	// DetectEarlyWarnings is BatchPredict filtered to high and critical
	// risk levels, order preserved.
	DetectEarlyWarnings(ctx context.Context, companyID string) ([]TurnoverRisk, error)
}

// FeatureExtractor derives an EmployeeFeature from the data store.
type FeatureExtractor interface {
	Extract(ctx context.Context, employeeID string, companyID string) (EmployeeFeature, error)
}

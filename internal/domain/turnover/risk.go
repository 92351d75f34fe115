package turnover

import "time"

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
)

type KeyFactor struct {
	Factor string `json:"factor"`
	Impact Impact `json:"impact"`
	Weight int    `json:"weight"`
}

// TurnoverRisk is the engine's result for a single employee. It is not
// persisted by the engine; callers may cache it.
type TurnoverRisk struct {
	EmployeeID      string      `json:"employee_id"`
	EmployeeName    string      `json:"employee_name"`
	Department      string      `json:"department"`
	Position        string      `json:"position"`
	RiskScore       int         `json:"risk_score"`
	Probability     float64     `json:"probability"`
	RiskLevel       RiskLevel   `json:"risk_level"`
	KeyFactors      []KeyFactor `json:"key_factors"`
	TopReasons      []string    `json:"top_reasons"`
	Recommendations []string    `json:"recommendations"`
	WarningTime     *time.Time  `json:"warning_time,omitempty"`
}

package turnover

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/cloudwego/eino/components/model"
	"golang.org/x/sync/errgroup"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/config"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/employee"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/turnover"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/pkg/metrics"
)

type TurnoverServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	extractor      turnover.FeatureExtractor
	chatModel      model.BaseChatModel
	fallbackPolicy config.FallbackPolicy
	concurrency    int
	logger         *slog.Logger
	now            func() time.Time
}

func NewTurnoverService(
	employeeRepo employee.EmployeeRepository,
	extractor turnover.FeatureExtractor,
	chatModel model.BaseChatModel,
	fallbackPolicy config.FallbackPolicy,
	concurrency int,
	logger *slog.Logger,
) turnover.TurnoverService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &TurnoverServiceImpl{
		employeeRepo:   employeeRepo,
		extractor:      extractor,
		chatModel:      chatModel,
		fallbackPolicy: fallbackPolicy,
		concurrency:    concurrency,
		logger:         logger,
		now:            time.Now,
	}
}

// Predict implements turnover.TurnoverService.
func (s *TurnoverServiceImpl) Predict(ctx context.Context, employeeID string, companyID string) (turnover.TurnoverRisk, error) {
	emp, err := s.employeeRepo.GetByIDAndCompanyID(ctx, employeeID, companyID)
	if err != nil {
		return turnover.TurnoverRisk{}, err
	}

	return s.predictEmployee(ctx, emp)
}

// BatchPredict implements turnover.TurnoverService.
func (s *TurnoverServiceImpl) BatchPredict(ctx context.Context, companyID string) ([]turnover.TurnoverRisk, error) {
	started := s.now()

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	// Per-employee slots keep collection lock-free; failed slots stay nil.
	results := make([]*turnover.TurnoverRisk, len(employees))

	g := &errgroup.Group{}
	g.SetLimit(s.concurrency)
	for i, emp := range employees {
		g.Go(func() error {
			risk, err := s.predictEmployee(ctx, emp)
			if err != nil {
				// One employee must never abort the batch.
				s.logger.Warn("skipping employee in batch prediction",
					"employee_id", emp.ID, "error", err)
				metrics.BatchSkippedTotal.Inc()
				return nil
			}
			results[i] = &risk
			return nil
		})
	}
	_ = g.Wait()

	risks := make([]turnover.TurnoverRisk, 0, len(results))
	for _, r := range results {
		if r != nil {
			risks = append(risks, *r)
		}
	}

	// Descending by score; employee ID breaks ties for reproducible output.
	sort.Slice(risks, func(i, j int) bool {
		if risks[i].RiskScore != risks[j].RiskScore {
			return risks[i].RiskScore > risks[j].RiskScore
		}
		return risks[i].EmployeeID < risks[j].EmployeeID
	})

	metrics.BatchDuration.Observe(s.now().Sub(started).Seconds())

	return risks, nil
}

// DetectEarlyWarnings implements turnover.TurnoverService.
func (s *TurnoverServiceImpl) DetectEarlyWarnings(ctx context.Context, companyID string) ([]turnover.TurnoverRisk, error) {
	risks, err := s.BatchPredict(ctx, companyID)
	if err != nil {
		return nil, err
	}

	warnings := make([]turnover.TurnoverRisk, 0)
	for _, risk := range risks {
		if risk.RiskLevel == turnover.RiskLevelHigh || risk.RiskLevel == turnover.RiskLevelCritical {
			warnings = append(warnings, risk)
		}
	}

	return warnings, nil
}

func (s *TurnoverServiceImpl) predictEmployee(ctx context.Context, emp employee.Employee) (turnover.TurnoverRisk, error) {
	feat, err := s.extractor.Extract(ctx, emp.ID, emp.CompanyID)
	if err != nil {
		return turnover.TurnoverRisk{}, err
	}

	ruleScore, ruleFactors := ruleBasedScore(feat)
	behaviorScore := behaviorBasedScore(feat)
	inferenceScore, inferenceOK := s.inferenceBasedScore(ctx, feat)
	if !inferenceOK {
		metrics.InferenceFallbackTotal.Inc()
	}

	finalScore := ensembleScore(ruleScore, inferenceScore, behaviorScore)
	level := classifyRisk(finalScore)

	factors := keyFactors(feat)
	if !inferenceOK && s.fallbackPolicy == config.FallbackFlag {
		factors = append(factors, turnover.KeyFactor{
			Factor: inferenceUnavailableFactor,
			Impact: turnover.ImpactNegative,
			Weight: 0,
		})
	}

	s.logger.Debug("turnover risk computed",
		"employee_id", emp.ID,
		"rule_score", ruleScore,
		"rule_factors", ruleFactors,
		"inference_score", inferenceScore,
		"behavior_score", behaviorScore,
		"final_score", finalScore,
		"risk_level", level,
	)
	metrics.PredictionsTotal.WithLabelValues(string(level)).Inc()

	return turnover.TurnoverRisk{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		Department:      emp.Department,
		Position:        emp.PositionTitle,
		RiskScore:       finalScore,
		Probability:     float64(finalScore) / 100,
		RiskLevel:       level,
		KeyFactors:      factors,
		TopReasons:      topReasons(feat),
		Recommendations: recommendations(level),
		WarningTime:     warningTime(level, s.now()),
	}, nil
}

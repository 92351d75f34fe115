package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/turnover"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/handler/http/response"
)

type TurnoverHandler interface {
	// PredictEmployee returns the turnover risk for one employee
	PredictEmployee(w http.ResponseWriter, r *http.Request)
	// BatchPredict returns risks for all active employees, highest first
	BatchPredict(w http.ResponseWriter, r *http.Request)
	// EarlyWarnings returns only high and critical risks
	EarlyWarnings(w http.ResponseWriter, r *http.Request)
}

type turnoverHandlerImpl struct {
	turnoverService turnover.TurnoverService
}

func NewTurnoverHandler(turnoverService turnover.TurnoverService) TurnoverHandler {
	return &turnoverHandlerImpl{turnoverService: turnoverService}
}

// companyIDFromContext extracts the company scope from the JWT claims.
func companyIDFromContext(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// PredictEmployee handles GET /turnover-risks/employees/{employeeID}
func (h *turnoverHandlerImpl) PredictEmployee(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "employeeID is required", nil)
		return
	}

	result, err := h.turnoverService.Predict(r.Context(), employeeID, companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BatchPredict handles GET /turnover-risks
func (h *turnoverHandlerImpl) BatchPredict(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	results, err := h.turnoverService.BatchPredict(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// EarlyWarnings handles GET /turnover-risks/early-warnings
func (h *turnoverHandlerImpl) EarlyWarnings(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	results, err := h.turnoverService.DetectEarlyWarnings(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fireplan-nl/fireplan/internal/aiparse"
	"github.com/fireplan-nl/fireplan/internal/gateway"
	"github.com/fireplan-nl/fireplan/internal/metrics"
	"github.com/fireplan-nl/fireplan/internal/profile"
	"github.com/fireplan-nl/fireplan/internal/prompt"
	"github.com/fireplan-nl/fireplan/internal/wizard"
	"github.com/fireplan-nl/fireplan/pkg/constants"
	"github.com/fireplan-nl/fireplan/pkg/finance"
	"github.com/fireplan-nl/fireplan/pkg/loans"
	"github.com/fireplan-nl/fireplan/pkg/taxcalc"
)

// Generator produces plan text for a prompt. Satisfied by *gateway.Client.
type Generator interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

type handler struct {
	logger    *zap.Logger
	generator Generator
	version   string
}

// NewHandler constructs the HTTP handler that serves the planning API.
func NewHandler(logger *zap.Logger, generator Generator, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, generator: generator, version: trimmedVersion}

	mux := http.NewServeMux()

	// Plan generation (profile -> prompt -> AI -> parsed plan)
	mux.HandleFunc("/api/plan", h.handlePlan)

	// Stateless wizard transition service
	mux.HandleFunc("/api/wizard/advance", h.handleWizardAdvance)

	// Box 3 two-regime comparison for the sliders
	mux.HandleFunc("/api/tax/compare", h.handleTaxCompare)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	mux.HandleFunc("/healthz", h.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

type planResponse struct {
	Result          aiparse.Result `json:"result"`
	MortgagePayment float64        `json:"mortgagePayment"`
	RequestID       string         `json:"requestId"`
	Duration        string         `json:"duration"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	requestID := uuid.NewString()

	var p profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode profile: %v", err), "server.handlePlan")
		return
	}

	if step, errs := wizard.ValidateAll(p); len(errs) > 0 {
		metrics.PlanRequestsTotal.WithLabelValues("invalid").Inc()
		h.logger.Warn("plan request failed validation",
			zap.String("op", "server.handlePlan"),
			zap.String("requestId", requestID),
			zap.String("step", string(step)),
			zap.Int("fields", len(errs)),
		)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  fmt.Sprintf("profile is incomplete at the %s step", step),
			Fields: errs,
		})
		return
	}

	planPrompt := prompt.BuildPlanPrompt(p)

	upstreamStart := time.Now()
	text, err := h.generator.Generate(r.Context(), planPrompt)
	metrics.UpstreamDuration.Observe(time.Since(upstreamStart).Seconds())

	if err != nil {
		h.respondGatewayError(w, err, requestID)
		return
	}

	result := aiparse.Parse(text)
	if result.WealthProjection.CurrentWealth == 0 {
		metrics.WealthFallbacksTotal.Inc()
	}
	result.ApplyProfileFallback(p.LiquidWealth())

	if result.WealthProjection.ProjectedAtRetirement == 0 {
		result.WealthProjection.ProjectedAtRetirement = int(finance.ProjectWealth(
			float64(result.WealthProjection.CurrentWealth),
			expectedReturn(p),
			float64(result.Metrics.MonthlySavingsTarget),
			finance.YearsToRetirement(profile.Count(p.Age), profile.Count(p.RetirementAge)),
		))
	}

	elapsed := time.Since(start)
	metrics.PlanRequestsTotal.WithLabelValues("success").Inc()
	h.logger.Info("plan computed",
		zap.String("op", "server.handlePlan"),
		zap.String("requestId", requestID),
		zap.Int("actionSteps", len(result.ActionSteps)),
		zap.Int("products", len(result.Products)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, planResponse{
		Result:          result,
		MortgagePayment: mortgagePayment(p),
		RequestID:       requestID,
		Duration:        elapsed.String(),
	})
}

// respondGatewayError maps a gateway failure category to an HTTP status and
// surfaces the upstream detail opaquely, per the error contract.
func (h *handler) respondGatewayError(w http.ResponseWriter, err error, requestID string) {
	metrics.PlanRequestsTotal.WithLabelValues("error").Inc()

	var gwErr *gateway.Error
	if !errors.As(err, &gwErr) {
		metrics.PlanFailures.WithLabelValues(string(gateway.CategoryOther)).Inc()
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handlePlan")
		return
	}

	metrics.PlanFailures.WithLabelValues(string(gwErr.Category)).Inc()

	status := http.StatusInternalServerError
	switch gwErr.Category {
	case gateway.CategoryTimeout:
		status = http.StatusGatewayTimeout
	case gateway.CategoryUnreachable, gateway.CategoryUpstream:
		status = http.StatusBadGateway
	}

	h.logger.Error("plan request failed",
		zap.String("op", "server.handlePlan"),
		zap.String("requestId", requestID),
		zap.String("category", string(gwErr.Category)),
		zap.Int("status", status),
		zap.String("error", gwErr.Message),
	)

	h.writeJSON(w, status, errorResponse{Error: gwErr.Message, Details: gwErr.Detail})
}

type advanceRequest struct {
	Step       wizard.Step       `json:"step"`
	Action     wizard.ActionType `json:"action"`
	Submitting bool              `json:"submitting"`
	Profile    profile.Profile   `json:"profile"`
}

func (h *handler) handleWizardAdvance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleWizardAdvance")
		return
	}

	if req.Step == "" {
		req.Step = wizard.StepHousehold
	}
	if !req.Step.Valid() {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown wizard step %q", req.Step), "server.handleWizardAdvance")
		return
	}

	state := wizard.State{Step: req.Step, Errors: map[string]string{}, Submitting: req.Submitting}
	next := wizard.Apply(state, req.Action, req.Profile)

	h.writeJSON(w, http.StatusOK, next)
}

type taxCompareRequest struct {
	Savings           float64 `json:"savings"`
	Investments       float64 `json:"investments"`
	HomeValue         float64 `json:"homeValue"`
	MortgageBalance   float64 `json:"mortgageBalance"`
	ExpectedReturnPct float64 `json:"expectedReturnPct"`
}

type taxCompareResponse struct {
	NetWorth         float64 `json:"netWorth"`
	CurrentRegimeTax float64 `json:"currentRegimeTax"`
	NewRegimeTax     float64 `json:"newRegimeTax"`
	Difference       float64 `json:"difference"`
}

func (h *handler) handleTaxCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req taxCompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleTaxCompare")
		return
	}

	netWorth := taxcalc.NetWorth(req.Savings, req.Investments, req.HomeValue, req.MortgageBalance)

	h.writeJSON(w, http.StatusOK, taxCompareResponse{
		NetWorth:         netWorth,
		CurrentRegimeTax: taxcalc.CurrentRegimeTax(netWorth),
		NewRegimeTax:     taxcalc.NewRegimeTax(netWorth, req.ExpectedReturnPct),
		Difference:       taxcalc.Difference(netWorth, req.ExpectedReturnPct),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func expectedReturn(p profile.Profile) float64 {
	if p.ExpectedReturnPct > 0 {
		return p.ExpectedReturnPct
	}
	return constants.FictionalReturnRate * constants.PercentageMultiplier
}

func mortgagePayment(p profile.Profile) float64 {
	return loans.CalculateMonthlyPayment(
		profile.Amount(p.MortgageBalance),
		profile.Amount(p.MortgageRate),
		profile.Count(p.MortgageYearsLeft)*constants.MonthsPerYear,
	)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

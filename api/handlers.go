/*
handlers.go - HTTP handlers for the salary calculator

PURPOSE:
  Exposes the payroll calculator in two shapes: the single-screen HTML form
  the original app had, and a JSON endpoint for scripted clients. Handlers
  parse the request, supply today's date, delegate to payroll, and render.

ENDPOINTS:
  Form:
    GET    /                        Splash, then the empty form
    POST   /                        Form with the 13 result cards

  API:
    GET    /api/health              Liveness
    POST   /api/salary/calculate    JSON report

ARCHITECTURE:
  Handler holds only host concerns:
  - Logger: request-scoped logging
  - Now: the clock (tests pin it)
  - SplashDelay: how long the splash overlay stays up

ERROR HANDLING:
  - 400: Invalid numbers ("Please enter valid numbers."), bad JSON, bad date
  - 413: Body larger than maxBodyBytes
  - 500: Anything else
  The form page never returns an error status; it re-renders with the
  message instead, including when the form body cannot be read.

SEE ALSO:
  - dto.go: Request/response data structures
  - page.go: HTML template rendering
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/warp/salary-engine/generic"
	"github.com/warp/salary-engine/payroll"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// maxBodyBytes caps form and JSON bodies. Five short fields fit many times over.
const maxBodyBytes = 64 << 10

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Logger      *slog.Logger
	Now         func() time.Time
	SplashDelay time.Duration
}

// NewHandler creates a new handler using the wall clock.
func NewHandler(logger *slog.Logger, splashDelay time.Duration) *Handler {
	return &Handler{
		Logger:      logger,
		Now:         time.Now,
		SplashDelay: splashDelay,
	}
}

func (h *Handler) today() generic.TimePoint {
	return generic.FromTime(h.Now())
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	return h.Logger.With("request_id", middleware.GetReqID(r.Context()))
}

// =============================================================================
// FORM HANDLERS
// =============================================================================

// ShowForm renders the empty form behind the splash overlay.
// GET /
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, newPageData(h.SplashDelay, payroll.RawInputs{}, nil, ""))
}

// SubmitForm calculates from posted form fields and re-renders the page.
// A new calculation replaces whatever report was on screen before.
// POST /
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.log(r).Info("form unreadable", "error", err)
		h.renderPage(w, r, newPageData(0, payroll.RawInputs{}, nil, payroll.InvalidInputMessage))
		return
	}

	raw := payroll.RawInputs{
		BaseSalary:    r.PostForm.Get(payroll.FieldBaseSalary),
		TaxAmount:     r.PostForm.Get(payroll.FieldTaxAmount),
		MedicalAmount: r.PostForm.Get(payroll.FieldMedicalAmount),
		LeaveDays:     r.PostForm.Get(payroll.FieldLeaveDays),
		MiscUnits:     r.PostForm.Get(payroll.FieldMiscUnits),
	}

	report, err := payroll.CalculateText(raw, payroll.CalculationContext{ReferenceDate: h.today()})
	if err != nil {
		h.log(r).Info("form rejected", "error", err)
		h.renderPage(w, r, newPageData(0, raw, nil, payroll.InvalidInputMessage))
		return
	}

	h.log(r).Debug("form calculated", "period", report.Period)
	h.renderPage(w, r, newPageData(0, raw, &report, ""))
}

// =============================================================================
// API HANDLERS
// =============================================================================

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{Status: "ok"})
}

// Calculate returns the salary report as JSON.
// POST /api/salary/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ref := h.today()
	if req.ReferenceDate != "" {
		parsed, err := generic.ParseDate(req.ReferenceDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid reference_date format (use YYYY-MM-DD)", err)
			return
		}
		ref = parsed
	}

	report, err := payroll.CalculateText(req.RawInputs(), payroll.CalculationContext{ReferenceDate: ref})
	if err != nil {
		h.log(r).Info("calculation rejected", "error", err)
		writeError(w, statusFor(err), messageFor(err), err)
		return
	}

	h.log(r).Debug("calculated", "period", report.Period, "fifth_monday", report.Breakdown.FifthMonday)
	writeJSON(w, http.StatusOK, toReportDTO(report, ref.String()))
}

// =============================================================================
// HELPERS
// =============================================================================

func statusFor(err error) int {
	if generic.IsClientError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func messageFor(err error) string {
	if generic.IsInvalidInput(err) {
		return payroll.InvalidInputMessage
	}
	return "Calculation failed"
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

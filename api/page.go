package api

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/warp/salary-engine/payroll"
)

// templatesFS embeds the single HTML page.
//
//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// =============================================================================
// PAGE MODEL
// =============================================================================

type formField struct {
	Name      string
	Label     string
	Value     string
	InputMode string // "decimal" or "numeric"
}

type pageData struct {
	Title        string
	SplashMillis int64
	Fields       []formField
	Report       *payroll.ResultReport
	Message      string
}

// newPageData builds the view. splash == 0 skips the splash overlay,
// which is only shown on the first visit.
func newPageData(splash time.Duration, raw payroll.RawInputs, report *payroll.ResultReport, message string) pageData {
	return pageData{
		Title:        payroll.RupeeSymbol + " Salary Calculator",
		SplashMillis: splash.Milliseconds(),
		Fields: []formField{
			{Name: payroll.FieldBaseSalary, Label: "Monthly Salary (₹):", Value: raw.BaseSalary, InputMode: "decimal"},
			{Name: payroll.FieldTaxAmount, Label: "Tax Amount (₹):", Value: raw.TaxAmount, InputMode: "decimal"},
			{Name: payroll.FieldMedicalAmount, Label: "Medical Deduction (₹):", Value: raw.MedicalAmount, InputMode: "decimal"},
			{Name: payroll.FieldLeaveDays, Label: "Leave Days:", Value: raw.LeaveDays, InputMode: "numeric"},
			{Name: payroll.FieldMiscUnits, Label: "Dabba Kada Units:", Value: raw.MiscUnits, InputMode: "numeric"},
		},
		Report:  report,
		Message: message,
	}
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.ExecuteTemplate(w, "index.html", data); err != nil {
		h.log(r).Error("page template failed", "error", err)
	}
}

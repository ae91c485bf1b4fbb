/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for the salary API. These types decouple
  the payroll report from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  CalculateRequest:  five form fields + optional reference date
  ReportDTO:         13 display lines + unformatted amounts
  ErrorResponse:     error envelope shared by every endpoint

FIELD VALUES:
  Form fields arrive as text, exactly as a user typed them. FieldValue also
  accepts bare JSON numbers and null so scripted clients need not quote.

SEE ALSO:
  - handlers.go: Uses these types
  - payroll/types.go: ResultReport
*/
package api

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/warp/salary-engine/payroll"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// FieldValue is a form field that may be sent as a JSON string or number.
type FieldValue string

func (f *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FieldValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FieldValue(n.String())
	return nil
}

// CalculateRequest is the body of POST /api/salary/calculate.
type CalculateRequest struct {
	BaseSalary    FieldValue `json:"base_salary"`
	TaxAmount     FieldValue `json:"tax_amount"`
	MedicalAmount FieldValue `json:"medical_amount"`
	LeaveDays     FieldValue `json:"leave_days"`
	MiscUnits     FieldValue `json:"misc_units"`

	// ReferenceDate overrides today's date (YYYY-MM-DD).
	ReferenceDate string `json:"reference_date,omitempty"`
}

// RawInputs converts the request to payroll form text.
func (r CalculateRequest) RawInputs() payroll.RawInputs {
	return payroll.RawInputs{
		BaseSalary:    string(r.BaseSalary),
		TaxAmount:     string(r.TaxAmount),
		MedicalAmount: string(r.MedicalAmount),
		LeaveDays:     string(r.LeaveDays),
		MiscUnits:     string(r.MiscUnits),
	}
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ReportDTO is a calculated salary report.
type ReportDTO struct {
	Period        string               `json:"period"`
	ReferenceDate string               `json:"reference_date"`
	FifthMonday   bool                 `json:"fifth_monday"`
	Lines         []payroll.ResultLine `json:"lines"`
	Amounts       AmountsDTO           `json:"amounts"`
}

// AmountsDTO carries the unrounded amounts. decimal.Decimal marshals as a
// quoted string so no precision is lost in transit.
type AmountsDTO struct {
	BaseSalary       decimal.Decimal `json:"base_salary"`
	PerDaySalary     decimal.Decimal `json:"per_day_salary"`
	LeaveDays        int             `json:"leave_days"`
	LeaveDeduction   decimal.Decimal `json:"leave_deduction"`
	Bonus            decimal.Decimal `json:"fifth_monday_bonus"`
	SalaryWithBonus  decimal.Decimal `json:"salary_with_bonus"`
	TaxDeduction     decimal.Decimal `json:"tax_deduction"`
	MedicalDeduction decimal.Decimal `json:"medical_deduction"`
	PFDeduction      decimal.Decimal `json:"pf_deduction"`
	MiscDeduction    decimal.Decimal `json:"misc_deduction"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetSalary        decimal.Decimal `json:"net_salary"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthDTO is returned by GET /api/health.
type HealthDTO struct {
	Status string `json:"status"`
}

// toReportDTO converts a payroll report for the wire.
func toReportDTO(report payroll.ResultReport, referenceDate string) ReportDTO {
	b := report.Breakdown
	return ReportDTO{
		Period:        report.Period,
		ReferenceDate: referenceDate,
		FifthMonday:   b.FifthMonday,
		Lines:         report.Lines,
		Amounts: AmountsDTO{
			BaseSalary:       b.BaseSalary.Value,
			PerDaySalary:     b.PerDaySalary.Value,
			LeaveDays:        b.LeaveDays,
			LeaveDeduction:   b.LeaveDeduction.Value,
			Bonus:            b.Bonus.Value,
			SalaryWithBonus:  b.SalaryWithBonus.Value,
			TaxDeduction:     b.TaxDeduction.Value,
			MedicalDeduction: b.MedicalDeduction.Value,
			PFDeduction:      b.PFDeduction.Value,
			MiscDeduction:    b.MiscDeduction.Value,
			TotalDeductions:  b.TotalDeductions.Value,
			NetSalary:        b.NetSalary.Value,
		},
	}
}

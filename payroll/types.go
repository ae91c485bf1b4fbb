// Package payroll implements the monthly salary breakdown.
// It uses the generic package for money, calendar and error types.
package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/warp/salary-engine/generic"
)

// =============================================================================
// INPUTS
// =============================================================================

// SalaryInputs are the five parsed form values. The zero value is all zeros.
type SalaryInputs struct {
	BaseSalary    decimal.Decimal
	TaxAmount     decimal.Decimal
	MedicalAmount decimal.Decimal
	LeaveDays     int
	MiscUnits     int
}

// RawInputs are the five form fields as the user typed them.
// Blank fields read as zero.
type RawInputs struct {
	BaseSalary    string `json:"base_salary" yaml:"base_salary"`
	TaxAmount     string `json:"tax_amount" yaml:"tax_amount"`
	MedicalAmount string `json:"medical_amount" yaml:"medical_amount"`
	LeaveDays     string `json:"leave_days" yaml:"leave_days"`
	MiscUnits     string `json:"misc_units" yaml:"misc_units"`
}

// Field names used in InvalidInputError.Field.
const (
	FieldBaseSalary    = "base_salary"
	FieldTaxAmount     = "tax_amount"
	FieldMedicalAmount = "medical_amount"
	FieldLeaveDays     = "leave_days"
	FieldMiscUnits     = "misc_units"
)

// CalculationContext carries the reference date. The host owns the clock.
type CalculationContext struct {
	ReferenceDate generic.TimePoint
}

// =============================================================================
// REPORT
// =============================================================================

// ResultLine is one labelled row of the report.
type ResultLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Breakdown holds every intermediate amount before formatting.
type Breakdown struct {
	BaseSalary       generic.Money
	PerDaySalary     generic.Money
	LeaveDays        int
	LeaveDeduction   generic.Money
	FifthMonday      bool
	Bonus            generic.Money
	SalaryWithBonus  generic.Money
	TaxDeduction     generic.Money
	MedicalDeduction generic.Money
	PFDeduction      generic.Money
	MiscDeduction    generic.Money
	TotalDeductions  generic.Money
	NetSalary        generic.Money
}

// ResultReport is the 13-line breakdown handed to a renderer.
// Lines is never modified after Calculate returns it.
type ResultReport struct {
	Period    string
	Lines     []ResultLine
	Breakdown Breakdown
}

// ReportLineCount is the fixed length of ResultReport.Lines.
const ReportLineCount = 13

// Report labels, in display order.
const (
	LabelPeriod           = "Salary for"
	LabelBaseSalary       = "Base Monthly Salary"
	LabelPerDaySalary     = "Per Day Salary (Base/30)"
	LabelLeaveDays        = "Leave Days Taken"
	LabelLeaveDeduction   = "Leave Deduction"
	LabelBonus            = "5th Monday Bonus"
	LabelSalaryWithBonus  = "Salary with Bonus"
	LabelTaxDeduction     = "Tax Deduction"
	LabelMedicalDeduction = "Medical Deduction"
	LabelPFDeduction      = "PF Deduction (10%)"
	LabelMiscDeduction    = "Dabba Kada Deduction"
	LabelTotalDeductions  = "Total Deductions"
	LabelNetSalary        = "Net Monthly Salary"
)

// InvalidInputMessage is what users see when any field fails to parse.
const InvalidInputMessage = "Please enter valid numbers."

// Value returns the formatted value for label, or "" if absent.
func (r ResultReport) Value(label string) string {
	for _, l := range r.Lines {
		if l.Label == label {
			return l.Value
		}
	}
	return ""
}

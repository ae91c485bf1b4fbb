/*
calculator.go - Monthly salary breakdown

PURPOSE:
  Turns the five form inputs and a reference date into the 13-line salary
  report. This is the only place the payroll rules live.

RULES (fixed, not configurable):
  perDay          = base / 30
  bonus           = perDay if the reference month has five Mondays, else 0
  salaryWithBonus = base + bonus
  pf              = base * 10%
  misc            = miscUnits * 30
  leave           = perDay * leaveDays
  totalDeductions = tax + medical + pf + misc + leave
  net             = salaryWithBonus - totalDeductions

PRECISION:
  Every step is decimal arithmetic. Rounding happens only in FormatINR, so
  net == salaryWithBonus - totalDeductions holds exactly in Breakdown.

FAILURE:
  CalculateText parses all five fields first. One bad field aborts the
  calculation and no report is produced. Negative numbers are not errors.

SEE ALSO:
  - format.go: FormatINR
  - calendar.go: HasFifthMonday
  - generic/errors.go: InvalidInputError
*/
package payroll

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/warp/salary-engine/generic"
)

// =============================================================================
// CONSTANTS
// =============================================================================

var (
	// DaysPerMonth is the fixed divisor for per-day salary.
	DaysPerMonth = decimal.NewFromInt(30)

	// PFRate is the provident fund share of base salary.
	PFRate = decimal.RequireFromString("0.10")

	// MiscUnitCost is the flat deduction per dabba unit.
	MiscUnitCost = generic.NewMoneyFromInt(30, generic.CurrencyINR)
)

// =============================================================================
// PARSING
// =============================================================================

// ParseInputs converts form text into SalaryInputs. The first field that
// fails (in form order) is returned as an *generic.InvalidInputError.
func ParseInputs(raw RawInputs) (SalaryInputs, error) {
	var (
		in  SalaryInputs
		err error
	)
	if in.BaseSalary, err = generic.ParseDecimal(FieldBaseSalary, raw.BaseSalary); err != nil {
		return SalaryInputs{}, err
	}
	if in.TaxAmount, err = generic.ParseDecimal(FieldTaxAmount, raw.TaxAmount); err != nil {
		return SalaryInputs{}, err
	}
	if in.MedicalAmount, err = generic.ParseDecimal(FieldMedicalAmount, raw.MedicalAmount); err != nil {
		return SalaryInputs{}, err
	}
	if in.LeaveDays, err = generic.ParseCount(FieldLeaveDays, raw.LeaveDays); err != nil {
		return SalaryInputs{}, err
	}
	if in.MiscUnits, err = generic.ParseCount(FieldMiscUnits, raw.MiscUnits); err != nil {
		return SalaryInputs{}, err
	}
	return in, nil
}

// =============================================================================
// CALCULATION
// =============================================================================

// CalculateText parses raw and calculates. No partial report on error.
func CalculateText(raw RawInputs, ctx CalculationContext) (ResultReport, error) {
	in, err := ParseInputs(raw)
	if err != nil {
		return ResultReport{}, err
	}
	return Calculate(in, ctx), nil
}

// Calculate produces the salary report for already-parsed inputs.
func Calculate(in SalaryInputs, ctx CalculationContext) ResultReport {
	b := Compute(in, ctx.ReferenceDate)
	return ResultReport{
		Period:    ctx.ReferenceDate.MonthLabel(),
		Lines:     b.lines(ctx.ReferenceDate),
		Breakdown: b,
	}
}

// Compute applies the payroll rules without formatting anything.
func Compute(in SalaryInputs, ref generic.TimePoint) Breakdown {
	inr := func(d decimal.Decimal) generic.Money { return generic.NewMoney(d, generic.CurrencyINR) }

	base := inr(in.BaseSalary)
	perDay := base.Div(DaysPerMonth)

	fifth := HasFifthMonday(ref.Year(), ref.Month())
	bonus := base.Zero()
	if fifth {
		bonus = perDay
	}
	withBonus := base.Add(bonus)

	tax := inr(in.TaxAmount)
	medical := inr(in.MedicalAmount)
	pf := base.Mul(PFRate)
	misc := MiscUnitCost.MulInt(in.MiscUnits)
	leave := perDay.MulInt(in.LeaveDays)
	total := tax.Sum(medical, pf, misc, leave)

	return Breakdown{
		BaseSalary:       base,
		PerDaySalary:     perDay,
		LeaveDays:        in.LeaveDays,
		LeaveDeduction:   leave,
		FifthMonday:      fifth,
		Bonus:            bonus,
		SalaryWithBonus:  withBonus,
		TaxDeduction:     tax,
		MedicalDeduction: medical,
		PFDeduction:      pf,
		MiscDeduction:    misc,
		TotalDeductions:  total,
		NetSalary:        withBonus.Sub(total),
	}
}

func (b Breakdown) lines(ref generic.TimePoint) []ResultLine {
	money := func(label string, m generic.Money) ResultLine {
		return ResultLine{Label: label, Value: FormatINR(m.Value)}
	}
	return []ResultLine{
		{Label: LabelPeriod, Value: ref.MonthLabel()},
		money(LabelBaseSalary, b.BaseSalary),
		money(LabelPerDaySalary, b.PerDaySalary),
		{Label: LabelLeaveDays, Value: strconv.Itoa(b.LeaveDays)},
		money(LabelLeaveDeduction, b.LeaveDeduction),
		money(LabelBonus, b.Bonus),
		money(LabelSalaryWithBonus, b.SalaryWithBonus),
		money(LabelTaxDeduction, b.TaxDeduction),
		money(LabelMedicalDeduction, b.MedicalDeduction),
		money(LabelPFDeduction, b.PFDeduction),
		money(LabelMiscDeduction, b.MiscDeduction),
		money(LabelTotalDeductions, b.TotalDeductions),
		money(LabelNetSalary, b.NetSalary),
	}
}

/*
generic_test.go - Tests for money, calendar and parsing primitives

Tests for:
- Money arithmetic stays exact
- Month periods (lengths, leap years, normalisation)
- Weekday counting
- Form text parsing and InvalidInputError
*/
package generic_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/salary-engine/generic"
)

// =============================================================================
// MONEY
// =============================================================================

func TestMoney_ArithmeticIsExact(t *testing.T) {
	a := generic.NewMoney(decimal.RequireFromString("0.1"), generic.CurrencyINR)
	b := generic.NewMoney(decimal.RequireFromString("0.2"), generic.CurrencyINR)

	sum := a.Add(b)

	assert.True(t, sum.Value.Equal(decimal.RequireFromString("0.3")))
	assert.Equal(t, generic.CurrencyINR, sum.Currency)
}

func TestMoney_SumAndSub(t *testing.T) {
	base := generic.NewMoneyFromInt(100, generic.CurrencyINR)
	total := base.Zero().Sum(
		generic.NewMoneyFromInt(10, generic.CurrencyINR),
		generic.NewMoneyFromInt(20, generic.CurrencyINR),
		generic.NewMoneyFromInt(30, generic.CurrencyINR),
	)

	assert.True(t, total.Value.Equal(decimal.NewFromInt(60)))
	assert.True(t, base.Sub(total).Value.Equal(decimal.NewFromInt(40)))
	assert.True(t, total.Sub(base).Value.IsNegative())
	assert.Equal(t, generic.CurrencyINR, total.Currency)
}

func TestMoney_MulIntAndDiv(t *testing.T) {
	m := generic.NewMoneyFromInt(30, generic.CurrencyINR)

	assert.True(t, m.MulInt(7).Value.Equal(decimal.NewFromInt(210)))
	assert.True(t, m.Div(decimal.NewFromInt(30)).Value.Equal(decimal.NewFromInt(1)))
	assert.True(t, m.MulInt(0).Value.IsZero())
}

// =============================================================================
// CALENDAR
// =============================================================================

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, generic.DaysInMonth(2024, time.July))
	assert.Equal(t, 30, generic.DaysInMonth(2024, time.June))
	assert.Equal(t, 29, generic.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, generic.DaysInMonth(2023, time.February))
	assert.Equal(t, 28, generic.DaysInMonth(1900, time.February), "century non-leap")
	assert.Equal(t, 29, generic.DaysInMonth(2000, time.February), "400-year leap")
}

func TestMonthPeriod(t *testing.T) {
	p := generic.MonthPeriod(2024, time.February)

	assert.Equal(t, "2024-02-01", p.Start.String())
	assert.Equal(t, "2024-02-29", p.End.String())
	assert.Len(t, p.Days(), 29)
	assert.Equal(t, "2024-02-29", p.Days()[28].String())
}

func TestMonthPeriod_NormalisesMonth(t *testing.T) {
	p := generic.MonthPeriod(2024, 13)

	assert.Equal(t, "2025-01-01", p.Start.String())
	assert.Equal(t, "2025-01-31", p.End.String())
}

func TestPeriod_CountWeekday(t *testing.T) {
	july := generic.MonthPeriod(2024, time.July)

	assert.Equal(t, 5, july.CountWeekday(time.Monday))
	assert.Equal(t, 5, july.CountWeekday(time.Wednesday))
	assert.Equal(t, 4, july.CountWeekday(time.Sunday))
}

func TestTimePoint_MonthLabel(t *testing.T) {
	assert.Equal(t, "July 2024", generic.NewTimePoint(2024, time.July, 31).MonthLabel())
	assert.Equal(t, "January 2026", generic.NewTimePoint(2026, time.January, 1).MonthLabel())
}

func TestParseDate(t *testing.T) {
	tp, err := generic.ParseDate("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, tp.Year())
	assert.Equal(t, time.July, tp.Month())
	assert.Equal(t, time.Monday, tp.Weekday())

	_, err = generic.ParseDate("15/07/2024")
	assert.ErrorIs(t, err, generic.ErrInvalidDate)
	assert.True(t, generic.IsClientError(err))
	assert.False(t, generic.IsInvalidInput(err))
}

// =============================================================================
// PARSING
// =============================================================================

func TestParseDecimal(t *testing.T) {
	d, err := generic.ParseDecimal("f", "  1234.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1234.5")))

	d, err = generic.ParseDecimal("f", "")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = generic.ParseDecimal("f", "-42")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(-42)))
}

func TestParseDecimal_FloatLiteralForms(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".5", "0.5"},
		{"+5", "5"},
		{"1e3", "1000"},
		{"2.5E2", "250"},
		{"999999999999999", "999999999999999"},
		{"-999999999999999.99", "-999999999999999.99"},
		{"0.1234567890123456", "0.123456789012"},
		{"1e-400", "0"},
		{"0e999999", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			d, err := generic.ParseDecimal("f", tc.in)

			require.NoError(t, err)
			assert.True(t, d.Equal(decimal.RequireFromString(tc.want)), "got %s", d)
		})
	}
}

func TestParseDecimal_RejectsHugeMagnitudes(t *testing.T) {
	// GIVEN: amounts at or beyond 10^15, however they are spelled
	for _, s := range []string{"1e400", "1e200000", "-1e15", "1000000000000000", "1e20"} {
		// WHEN: parsed
		start := time.Now()
		_, err := generic.ParseDecimal("base_salary", s)

		// THEN: invalid input, rejected without expanding the exponent
		assert.ErrorIs(t, err, generic.ErrInvalidInput, s)
		var inputErr *generic.InvalidInputError
		require.ErrorAs(t, err, &inputErr, s)
		assert.Equal(t, "base_salary", inputErr.Field)
		assert.Less(t, time.Since(start), time.Second, s)
	}
}

func TestParseDecimal_RejectsOverlongText(t *testing.T) {
	long := "1" + strings.Repeat("0", 100)

	_, err := generic.ParseDecimal("tax_amount", long)

	assert.ErrorIs(t, err, generic.ErrInvalidInput)
}

func TestParseDecimal_Invalid(t *testing.T) {
	for _, s := range []string{"abc", "12..5", "inf", "NaN", "1,000"} {
		_, err := generic.ParseDecimal("salary", s)

		require.Error(t, err, s)
		assert.True(t, errors.Is(err, generic.ErrInvalidInput), s)

		var inputErr *generic.InvalidInputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "salary", inputErr.Field)
		assert.Equal(t, s, inputErr.Value)
	}
}

func TestParseCount(t *testing.T) {
	n, err := generic.ParseCount("days", " 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = generic.ParseCount("days", "")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for _, s := range []string{"2.5", "two", "1e3"} {
		_, err := generic.ParseCount("days", s)
		assert.ErrorIs(t, err, generic.ErrInvalidInput, s)
	}
}

func TestInvalidInputError_Message(t *testing.T) {
	err := &generic.InvalidInputError{Field: "tax_amount", Value: "x"}
	assert.Equal(t, `invalid input for tax_amount: "x"`, err.Error())
}

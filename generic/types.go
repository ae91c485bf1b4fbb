/*
Package generic provides the domain-agnostic building blocks of the salary engine.

PURPOSE:
  This package contains the value types the payroll package is built on:
  money with exact decimal arithmetic, calendar days and month periods,
  and the error taxonomy shared by every host (web, terminal).

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A decimal quantity tagged with its currency
  - Currency: ISO-style currency code (INR is the only one in use)
  - ParseDecimal / ParseCount: Text-to-number conversion for form fields

DESIGN PRINCIPLES:
  1. Immutability: Every Money operation returns a new value
  2. Precision: Uses decimal.Decimal to avoid floating-point drift
  3. Type Safety: Money cannot be silently mixed with plain counts

USAGE:
  salary := generic.NewMoneyFromInt(30000, generic.CurrencyINR)
  perDay := salary.Div(decimal.NewFromInt(30))

SEE ALSO:
  - time.go: TimePoint and month helpers
  - period.go: Period and weekday counting
  - errors.go: InvalidInputError
*/
package generic

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Decimal quantity with currency
// =============================================================================

type Money struct {
	Value    decimal.Decimal
	Currency Currency
}

type Currency string

const (
	CurrencyINR Currency = "INR"
)

func NewMoney(value decimal.Decimal, currency Currency) Money {
	return Money{Value: value, Currency: currency}
}

func NewMoneyFromInt(value int64, currency Currency) Money {
	return Money{Value: decimal.NewFromInt(value), Currency: currency}
}

func (m Money) Zero() Money                 { return Money{Value: decimal.Zero, Currency: m.Currency} }
func (m Money) Add(o Money) Money           { return Money{Value: m.Value.Add(o.Value), Currency: m.Currency} }
func (m Money) Sub(o Money) Money           { return Money{Value: m.Value.Sub(o.Value), Currency: m.Currency} }
func (m Money) Mul(s decimal.Decimal) Money { return Money{Value: m.Value.Mul(s), Currency: m.Currency} }
func (m Money) Div(s decimal.Decimal) Money { return Money{Value: m.Value.Div(s), Currency: m.Currency} }
func (m Money) MulInt(n int) Money          { return m.Mul(decimal.NewFromInt(int64(n))) }

// Sum adds amounts onto m. All amounts are assumed to share m's currency.
func (m Money) Sum(amounts ...Money) Money {
	total := m
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// =============================================================================
// TEXT PARSING - Form field conversion
// =============================================================================

// Bounds on amount text. Magnitudes of 10^MaxAmountDigits or more are
// rejected; anything below 10^-AmountScale reads as zero.
const (
	MaxAmountDigits = 15
	AmountScale     = 12
	maxInputLength  = 64
)

// ParseDecimal converts form text to a decimal. Blank text is zero.
// Non-finite values ("inf", "nan") are rejected: decimal cannot hold them.
// Exponent forms ("1e3") are accepted within the amount bounds; the bounds
// are checked on coefficient and exponent so a value like "1e200000" is
// never expanded.
func ParseDecimal(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if len(s) > maxInputLength {
		return decimal.Zero, &InvalidInputError{Field: field, Value: s[:maxInputLength] + "...", Err: errTooLong}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil && (math.IsInf(f, 0) || math.IsNaN(f)) {
			return decimal.Zero, &InvalidInputError{Field: field, Value: s, Err: errNonFinite}
		}
		return decimal.Zero, &InvalidInputError{Field: field, Value: s, Err: err}
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}

	// |d| < 10^magnitude
	magnitude := d.NumDigits() + int(d.Exponent())
	switch {
	case magnitude > MaxAmountDigits:
		return decimal.Zero, &InvalidInputError{Field: field, Value: s, Err: errOutOfRange}
	case magnitude < -AmountScale:
		return decimal.Zero, nil
	case d.Exponent() < -AmountScale:
		return d.Round(AmountScale), nil
	}
	return d, nil
}

// ParseCount converts form text to a whole number. Blank text is zero.
// Fractional text such as "2.5" is invalid.
func ParseCount(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidInputError{Field: field, Value: s, Err: err}
	}
	return n, nil
}

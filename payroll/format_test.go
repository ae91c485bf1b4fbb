package payroll_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/salary-engine/payroll"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₹0.00"},
		{"5", "₹5.00"},
		{"999", "₹999.00"},
		{"999.999", "₹1,000.00"},
		{"1000", "₹1,000.00"},
		{"99999.99", "₹99,999.99"},
		{"100000", "₹1,00,000.00"},
		{"123456.78", "₹1,23,456.78"},
		{"123456.789", "₹1,23,456.79"},
		{"1000000", "₹10,00,000.00"},
		{"12345678", "₹1,23,45,678.00"},
		{"1234567890.1", "₹1,23,45,67,890.10"},
		{"1234", "₹1,234.00"},
		{"12345", "₹12,345.00"},
		{"999999999999999.99", "₹99,99,99,99,99,99,999.99"},
		{"0.005", "₹0.01"},
		{"0.004", "₹0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, payroll.FormatINR(decimal.RequireFromString(tc.in)))
		})
	}
}

func TestFormatINR_LongAmountGroupsInPairs(t *testing.T) {
	// GIVEN: a 40-digit amount
	amount := decimal.RequireFromString("1" + strings.Repeat("0", 39))

	// WHEN: formatted
	got := payroll.FormatINR(amount)

	// THEN: one leading digit, eighteen pairs, then the final group of three
	want := "₹1" + strings.Repeat(",00", 18) + ",000.00"
	assert.Equal(t, want, got)
}

func TestFormatINR_FromFloat(t *testing.T) {
	assert.Equal(t, "₹1,23,456.79", payroll.FormatINR(decimal.NewFromFloat(123456.789)))
}

func TestFormatINR_Negative(t *testing.T) {
	assert.Equal(t, "₹-1,23,456.00", payroll.FormatINR(decimal.NewFromInt(-123456)))
	assert.Equal(t, "₹-123.00", payroll.FormatINR(decimal.NewFromInt(-123)))
	assert.Equal(t, "₹-0.50", payroll.FormatINR(decimal.RequireFromString("-0.5")))
}

func TestFormatINR_NegativeRoundingToZeroHasNoSign(t *testing.T) {
	assert.Equal(t, "₹0.00", payroll.FormatINR(decimal.RequireFromString("-0.001")))
}

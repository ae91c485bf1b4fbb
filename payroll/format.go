package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol prefixes every formatted amount.
const RupeeSymbol = "₹"

// FormatINR renders amount with two decimals and Indian digit grouping:
// the last three integer digits form one group, the rest go in pairs.
//
//   FormatINR(decimal.NewFromInt(1000000))        // "₹10,00,000.00"
//   FormatINR(decimal.RequireFromString("999.5")) // "₹999.50"
//
// Negative amounts keep the sign after the symbol: "₹-1,23,456.00".
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	fixed := rounded.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(RupeeSymbol)
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(groupIndian(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupIndian inserts separators into a string of digits, left to right.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	lead := len(head) % 2
	if lead == 0 {
		lead = 2
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/2)
	b.WriteString(head[:lead])
	for i := lead; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

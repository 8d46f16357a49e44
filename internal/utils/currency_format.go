package utils

import (
	"fmt"
	"strings"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FormatOptions controls how ToCurrency renders an amount.
type FormatOptions struct {
	CurrencySymbol   string // placed after the sign, before the digits (may be blank)
	GroupSeparator   string // comma, period, space or blank
	DecimalPoint     string // only blank when places is zero
	PositiveSign     string // '+', space or blank
	NegativeSign     string // '-', '(', space or blank
	TrailingNegative string // appended after the digits when negative: '-', ')', space or blank
}

// DefaultFormatOptions returns comma grouping, a period decimal point and a leading minus.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		GroupSeparator: ",",
		DecimalPoint:   ".",
		NegativeSign:   "-",
	}
}

// ToCurrency converts a decimal to a money formatted string.
// Example: -1234567.8901 with places 2 and symbol "$" returns "-$1,234,567.89"
// Example: 123456789 with places 2 and separator " " returns "123 456 789.00"
// Example: -1234567.8901 with places 0, separator ".", no sign and trailing "-" returns "1.234.568-"
func ToCurrency(value decimal.Decimal, places int, opts FormatOptions) (string, error) {
	if places < 0 {
		return "", fmt.Errorf("%w: places must not be negative, got %d", apperrors.ErrValidation, places)
	}

	// Quantize with round-half-even so 2.25 renders as 2.2 at one place.
	quantized := value.RoundBank(int32(places))
	negative := quantized.IsNegative()

	digits := quantized.Abs().StringFixedBank(int32(places))
	whole, fraction := digits, ""
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		whole, fraction = digits[:i], digits[i+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteString(opts.NegativeSign)
	} else {
		b.WriteString(opts.PositiveSign)
	}
	b.WriteString(opts.CurrencySymbol)
	b.WriteString(groupDigits(whole, opts.GroupSeparator))
	if places > 0 {
		b.WriteString(opts.DecimalPoint)
		b.WriteString(fraction)
	}
	if negative {
		b.WriteString(opts.TrailingNegative)
	}
	return b.String(), nil
}

// groupDigits inserts sep between runs of three digits counted from the right.
func groupDigits(whole, sep string) string {
	if len(whole) <= 3 || sep == "" {
		return whole
	}
	var b strings.Builder
	head := len(whole) % 3
	if head > 0 {
		b.WriteString(whole[:head])
	}
	for i := head; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}

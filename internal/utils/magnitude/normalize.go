// Package magnitude rolls converted amounts up to the million/billion/trillion
// wording used in wire copy and picks the precision they should be printed with.
package magnitude

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Canonical suffixes.
const (
	Million  = "million"
	Billion  = "billion"
	Trillion = "trillion"
)

var (
	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
	trillion = decimal.NewFromInt(1_000_000_000_000)

	// Amounts from half a million upwards read better as a fraction of a million.
	halfMillion = decimal.NewFromInt(500_000)

	one = decimal.NewFromInt(1)
	ten = decimal.NewFromInt(10)
)

var millionAliases = map[string]struct{}{"m": {}, "mln": {}, "million": {}}

var billionAliases = map[string]struct{}{"b": {}, "bn": {}, "bln": {}, "billion": {}}

// Result is the normalized amount, the suffix to print after it and the number
// of decimal places to render.
type Result struct {
	Value     decimal.Decimal
	Suffix    string
	Precision int
}

// IsMillion reports whether token is one of the million aliases.
func IsMillion(token string) bool {
	_, ok := millionAliases[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// IsBillion reports whether token is one of the billion aliases.
func IsBillion(token string) bool {
	_, ok := billionAliases[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// Canonical maps a suffix alias to its canonical spelling. Unknown tokens are
// returned trimmed but otherwise unchanged.
func Canonical(token string) string {
	switch {
	case IsMillion(token):
		return Million
	case IsBillion(token):
		return Billion
	case strings.EqualFold(strings.TrimSpace(token), Trillion):
		return Trillion
	}
	return strings.TrimSpace(token)
}

// Normalize scales value and upgrades suffix so that e.g. 1500 million becomes
// 1.5 billion. A zero precision means "not specified": amounts under 1 get two
// places and amounts under 10 get one.
func Normalize(value decimal.Decimal, suffix string, precision int) Result {
	suffix = Canonical(suffix)

	if suffix == "" {
		switch {
		case value.GreaterThanOrEqual(trillion):
			value, suffix = value.Div(trillion), Trillion
		case value.GreaterThanOrEqual(billion):
			value, suffix = value.Div(billion), Billion
		case value.GreaterThanOrEqual(halfMillion):
			value, suffix = value.Div(million), Million
		}
	}

	if suffix == Billion && value.GreaterThanOrEqual(thousand) {
		value, suffix = value.Div(thousand), Trillion
	}

	if suffix == Million && value.GreaterThanOrEqual(thousand) {
		value, suffix = value.Div(thousand), Billion
	}

	if precision == 0 {
		switch {
		case value.LessThan(one):
			precision = 2
		case value.LessThan(ten):
			precision = 1
		}
	}

	return Result{Value: value, Suffix: suffix, Precision: precision}
}

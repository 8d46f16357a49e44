package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/SscSPs/newswire_macros/internal/utils"
	"github.com/SscSPs/newswire_macros/internal/utils/magnitude"
	"github.com/shopspring/decimal"
)

// Capture group names understood by MatchPattern.
const (
	MatchGroupName  = "match"
	ValueGroupName  = "value"
	SuffixGroupName = "suffix"
)

// SuffixPattern matches an optional million/billion token after an amount,
// and the closing parenthesis that may follow it.
const SuffixPattern = `(?:\s*-?\s*(?P<suffix>mln|bln|bn|[mM]illion|[bB]illion|[mb])\b)?\)?`

var nonNumeric = regexp.MustCompile(`[^\d.]`)

// MatchPattern is a compiled expression locating monetary literals. The
// "value" group is required; "match" defaults to the whole match and
// "suffix" is optional.
type MatchPattern struct {
	expr      *regexp.Regexp
	matchIdx  int
	valueIdx  int
	suffixIdx int
}

// NewMatchPattern compiles expr and resolves its named groups.
func NewMatchPattern(expr string) (MatchPattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return MatchPattern{}, fmt.Errorf("%w: invalid match pattern: %v", apperrors.ErrValidation, err)
	}

	p := MatchPattern{
		expr:      re,
		matchIdx:  re.SubexpIndex(MatchGroupName),
		valueIdx:  re.SubexpIndex(ValueGroupName),
		suffixIdx: re.SubexpIndex(SuffixGroupName),
	}
	if p.valueIdx < 0 {
		return MatchPattern{}, fmt.Errorf("%w: match pattern has no %q group", apperrors.ErrValidation, ValueGroupName)
	}
	if p.matchIdx < 0 {
		p.matchIdx = 0
	}
	return p, nil
}

// MustMatchPattern is like NewMatchPattern but panics on error.
func MustMatchPattern(expr string) MatchPattern {
	p, err := NewMatchPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source expression.
func (p MatchPattern) String() string {
	if p.expr == nil {
		return ""
	}
	return p.expr.String()
}

// ConversionRequest carries everything a single conversion scan needs.
type ConversionRequest struct {
	Rate decimal.Decimal
	// CurrencySymbol prefixes every converted amount, e.g. "A$".
	CurrencySymbol string
	Pattern        MatchPattern
	// SourceCurrency replaces a bare "$" in the original literal unless the
	// literal already carries it. Empty leaves literals untouched.
	SourceCurrency string
}

// monetaryMatch is one literal found during a scan.
type monetaryMatch struct {
	raw       string
	value     decimal.Decimal
	suffix    string
	precision int
}

// ConversionEngine scans article text fields for monetary literals and
// computes their converted replacements.
type ConversionEngine struct {
	BaseService
	fields []string
}

// NewConversionEngine creates an engine scanning fields in order.
func NewConversionEngine(fields []string, logger *slog.Logger) *ConversionEngine {
	return &ConversionEngine{
		BaseService: BaseService{Logger: logger},
		fields:      append([]string(nil), fields...),
	}
}

// Fields returns the text fields the engine scans.
func (e *ConversionEngine) Fields() []string {
	return append([]string(nil), e.fields...)
}

// Convert returns a copy of article and the map of original literal to
// replacement text. The input article is never modified.
func (e *ConversionEngine) Convert(ctx context.Context, article *domain.Article, req ConversionRequest) (*domain.Article, domain.ConversionResult) {
	diff := domain.ConversionResult{}
	if article == nil || req.Pattern.expr == nil {
		return article.Clone(), diff
	}

	for _, field := range e.fields {
		text, ok := article.Field(field)
		if !ok || text == "" {
			continue
		}

		for _, loc := range req.Pattern.expr.FindAllStringSubmatchIndex(text, -1) {
			if req.Pattern.converted(text, loc, req.CurrencySymbol) {
				continue
			}
			groups := submatches(text, loc)
			m, err := req.Pattern.extract(groups)
			if err != nil {
				e.LogDebug(ctx, "Skipping monetary literal", slog.String("field", field), slog.String("error", err.Error()))
				continue
			}
			if m == nil {
				continue
			}
			if _, seen := diff[m.raw]; seen {
				continue
			}

			replacement, err := e.format(m, req)
			if err != nil {
				e.LogDebug(ctx, "Skipping monetary literal", slog.String("literal", m.raw), slog.String("error", err.Error()))
				continue
			}
			diff[m.raw] = replacement
		}
	}

	return article.Clone(), diff
}

// ApplyReplacements returns a copy of article with every keyed literal found
// by req.Pattern replaced. Matches are located again with the pattern so a key
// never rewrites a longer literal that merely contains it.
func (e *ConversionEngine) ApplyReplacements(article *domain.Article, req ConversionRequest, diff domain.ConversionResult) *domain.Article {
	pattern := req.Pattern
	out := article.Clone()
	if out == nil || pattern.expr == nil || len(diff) == 0 {
		return out
	}

	for _, field := range e.fields {
		text, ok := out.Field(field)
		if !ok || text == "" {
			continue
		}

		var b strings.Builder
		last := 0
		for _, loc := range pattern.expr.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2*pattern.matchIdx], loc[2*pattern.matchIdx+1]
			if start < 0 || pattern.converted(text, loc, req.CurrencySymbol) {
				continue
			}
			key, stripped := stripUnpairedParen(text[start:end])
			replacement, found := diff[key]
			if !found {
				continue
			}
			b.WriteString(text[last:start])
			b.WriteString(replacement)
			if stripped {
				b.WriteString(")")
			}
			last = end
		}
		if last == 0 {
			continue
		}
		b.WriteString(text[last:])
		out.SetField(field, b.String())
	}
	return out
}

// converted reports whether the literal at loc is already followed by a
// conversion into symbol, as left by an earlier run.
func (p MatchPattern) converted(text string, loc []int, symbol string) bool {
	end := loc[2*p.matchIdx+1]
	if end < 0 || symbol == "" {
		return false
	}
	return strings.HasPrefix(text[end:], " ("+symbol)
}

func submatches(text string, loc []int) []string {
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return groups
}

func (p MatchPattern) extract(groups []string) (*monetaryMatch, error) {
	raw := groups[p.matchIdx]
	value := groups[p.valueIdx]
	if raw == "" || value == "" {
		return nil, nil
	}
	raw, _ = stripUnpairedParen(raw)

	amount, err := decimal.NewFromString(nonNumeric.ReplaceAllString(value, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrMalformedLiteral, value)
	}

	precision := 0
	if exp := amount.Exponent(); exp < 0 {
		precision = int(-exp)
	}

	suffix := ""
	if p.suffixIdx > 0 {
		suffix = groups[p.suffixIdx]
	}

	return &monetaryMatch{raw: raw, value: amount, suffix: suffix, precision: precision}, nil
}

func (e *ConversionEngine) format(m *monetaryMatch, req ConversionRequest) (string, error) {
	res := magnitude.Normalize(req.Rate.Mul(m.value), m.suffix, m.precision)

	opts := utils.DefaultFormatOptions()
	opts.CurrencySymbol = req.CurrencySymbol
	converted, err := utils.ToCurrency(res.Value, res.Precision, opts)
	if err != nil {
		return "", err
	}

	original := m.raw
	if req.SourceCurrency != "" && !strings.Contains(original, req.SourceCurrency) {
		original = strings.ReplaceAll(original, "$", req.SourceCurrency)
	}

	if res.Suffix != "" {
		return fmt.Sprintf("%s (%s %s)", original, converted, res.Suffix), nil
	}
	return fmt.Sprintf("%s (%s)", original, converted), nil
}

// stripUnpairedParen drops a closing parenthesis that has no opening one in s.
func stripUnpairedParen(s string) (string, bool) {
	if strings.Contains(s, ")") && !strings.Contains(s, "(") {
		return strings.ReplaceAll(s, ")", ""), true
	}
	return s, false
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
)

// amountPattern matches a decimal amount with optional thousands separators.
const amountPattern = `(?P<value>\d+(?:,\d{3})*(?:\.\d+)?)`

// bareDollarPrefix stops a plain "$" from matching inside "US$" or "NZ$".
const bareDollarPrefix = `(?:^|[^\w$])`

// currencyMacro binds a currency pair to the literals it converts.
type currencyMacro struct {
	info           domain.MacroInfo
	symbol         string
	sourceCurrency string
	pattern        MatchPattern
}

func newCurrencyMacro(name, label, from, to, symbol, sourceCurrency, prefix, marker string) currencyMacro {
	return currencyMacro{
		info: domain.MacroInfo{
			Name:         name,
			Label:        label,
			FromCurrency: from,
			ToCurrency:   to,
		},
		symbol:         symbol,
		sourceCurrency: sourceCurrency,
		pattern:        MustMatchPattern(prefix + `(?P<match>` + marker + `\s*` + amountPattern + SuffixPattern + `)`),
	}
}

// defaultCurrencyMacros returns the macros offered to editors. Australian
// dollars are written as a bare "$" or "AU$" in copy; "A$" is the converted
// output symbol and is never picked up as a source amount.
func defaultCurrencyMacros() []currencyMacro {
	return []currencyMacro{
		newCurrencyMacro("usd_to_aud", "Convert USD to AUD", "USD", "AUD", "A$", "", "", `(?:US\$|USD)`),
		newCurrencyMacro("aud_to_usd", "Convert AUD to USD", "AUD", "USD", "US$", "AU$", bareDollarPrefix, `(?:AU)?\$`),
		newCurrencyMacro("euro_to_aud", "Convert EUR to AUD", "EUR", "AUD", "A$", "", "", `(?:€|EUR)`),
		newCurrencyMacro("gbp_to_aud", "Convert GBP to AUD", "GBP", "AUD", "A$", "", "", `(?:£|GBP|STG)`),
		newCurrencyMacro("jpy_to_aud", "Convert JPY to AUD", "JPY", "AUD", "A$", "", "", `(?:¥|JPY)`),
		newCurrencyMacro("cny_to_aud", "Convert CNY to AUD", "CNY", "AUD", "A$", "", "", `(?:CNY|RMB)`),
		newCurrencyMacro("chf_to_aud", "Convert CHF to AUD", "CHF", "AUD", "A$", "", "", `(?:CHF|SFr\.?)`),
		newCurrencyMacro("nzd_to_aud", "Convert NZD to AUD", "NZD", "AUD", "A$", "", "", `(?:NZ\$|NZD)`),
		newCurrencyMacro("aud_to_nzd", "Convert AUD to NZD", "AUD", "NZD", "NZ$", "AU$", bareDollarPrefix, `(?:AU)?\$`),
	}
}

// currencyMacroService implements the CurrencyMacroSvcFacade interface
type currencyMacroService struct {
	BaseService
	rates  portssvc.ExchangeRateReaderSvc
	engine *ConversionEngine
	macros map[string]currencyMacro
}

// NewCurrencyMacroService creates the macro service on top of the rate cache and conversion engine
func NewCurrencyMacroService(rates portssvc.ExchangeRateReaderSvc, engine *ConversionEngine) portssvc.CurrencyMacroSvcFacade {
	svc := &currencyMacroService{
		BaseService: engine.BaseService,
		rates:       rates,
		engine:      engine,
		macros:      make(map[string]currencyMacro),
	}
	for _, m := range defaultCurrencyMacros() {
		svc.macros[m.info.Name] = m
	}
	return svc
}

// Ensure currencyMacroService implements the CurrencyMacroSvcFacade interface
var _ portssvc.CurrencyMacroSvcFacade = (*currencyMacroService)(nil)

func (s *currencyMacroService) ListMacros() []domain.MacroInfo {
	infos := make([]domain.MacroInfo, 0, len(s.macros))
	for _, m := range s.macros {
		infos = append(infos, m.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

func (s *currencyMacroService) RunMacro(ctx context.Context, name string, article *domain.Article, opts domain.MacroOptions) (*domain.Article, domain.ConversionResult, error) {
	macro, ok := s.macros[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: macro '%s'", apperrors.ErrNotFound, name)
	}
	if article == nil {
		return nil, nil, fmt.Errorf("%w: article is required", apperrors.ErrValidation)
	}

	req := ConversionRequest{
		CurrencySymbol: macro.symbol,
		Pattern:        macro.pattern,
		SourceCurrency: macro.sourceCurrency,
	}

	if opts.Rate != nil {
		if !opts.Rate.IsPositive() {
			return nil, nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
		}
		req.Rate = *opts.Rate
	} else {
		rate, err := s.rates.GetRate(ctx, macro.info.FromCurrency, macro.info.ToCurrency)
		if err != nil {
			s.LogError(ctx, err, "Failed to get exchange rate for macro", slog.String("macro", name))
			return nil, nil, fmt.Errorf("failed to run macro '%s': %w", name, err)
		}
		req.Rate = rate
	}

	out, diff := s.engine.Convert(ctx, article, req)
	if opts.Apply {
		out = s.engine.ApplyReplacements(out, req, diff)
	}

	s.LogDebug(ctx, "Currency macro ran",
		slog.String("macro", name),
		slog.String("rate", req.Rate.String()),
		slog.Int("replacements", len(diff)))
	return out, diff, nil
}

package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
	"github.com/SscSPs/newswire_macros/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyMacroServiceTestSuite struct {
	suite.Suite
	mockRates *MockExchangeRateService
	service   portssvc.CurrencyMacroSvcFacade
}

func (suite *CurrencyMacroServiceTestSuite) SetupTest() {
	suite.mockRates = new(MockExchangeRateService)
	engine := services.NewConversionEngine([]string{domain.FieldBodyHTML, domain.FieldHeadline}, nil)
	suite.service = services.NewCurrencyMacroService(suite.mockRates, engine)
}

func (suite *CurrencyMacroServiceTestSuite) TestListMacros() {
	macros := suite.service.ListMacros()

	names := make([]string, 0, len(macros))
	for _, m := range macros {
		names = append(names, m.Name)
	}
	suite.Equal([]string{
		"aud_to_nzd", "aud_to_usd", "chf_to_aud", "cny_to_aud", "euro_to_aud",
		"gbp_to_aud", "jpy_to_aud", "nzd_to_aud", "usd_to_aud",
	}, names)
	suite.Equal("USD", macros[len(macros)-1].FromCurrency)
	suite.Equal("AUD", macros[len(macros)-1].ToCurrency)
}

func (suite *CurrencyMacroServiceTestSuite) TestRunMacro_UsesCachedRate() {
	ctx := context.Background()
	article := &domain.Article{Headline: "Deal worth US$10 million"}
	suite.mockRates.On("GetRate", ctx, "USD", "AUD").Return(decimal.RequireFromString("1.5"), nil).Once()

	out, diff, err := suite.service.RunMacro(ctx, "usd_to_aud", article, domain.MacroOptions{})

	suite.Require().NoError(err)
	suite.Equal(domain.ConversionResult{"US$10 million": "US$10 million (A$15 million)"}, diff)
	suite.Equal(article.Headline, out.Headline)
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *CurrencyMacroServiceTestSuite) TestRunMacro_RateOverrideSkipsCache() {
	ctx := context.Background()
	rate := decimal.RequireFromString("0.65")
	article := &domain.Article{BodyHTML: "<p>Tickets cost $20 (AU$40 for families).</p>"}

	out, diff, err := suite.service.RunMacro(ctx, "aud_to_usd", article, domain.MacroOptions{Rate: &rate, Apply: true})

	suite.Require().NoError(err)
	suite.Equal(domain.ConversionResult{
		"$20":   "AU$20 (US$13)",
		"AU$40": "AU$40 (US$26)",
	}, diff)
	suite.Equal("<p>Tickets cost AU$20 (US$13) (AU$40 (US$26) for families).</p>", out.BodyHTML)
	suite.mockRates.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyMacroServiceTestSuite) TestRunMacro_RerunOnConvertedCopy() {
	ctx := context.Background()
	rate := decimal.RequireFromString("0.65")

	tests := []struct {
		macro string
		text  string
		want  string
	}{
		{"aud_to_usd", "Tickets $10 each, AU$4 for kids", "Tickets AU$10 (US$6.5) each, AU$4 (US$2.6) for kids"},
		{"usd_to_aud", "Fees of US$10 apply", "Fees of US$10 (A$6.5) apply"},
	}

	for _, tt := range tests {
		suite.Run(tt.macro, func() {
			first, diff, err := suite.service.RunMacro(ctx, tt.macro, &domain.Article{BodyHTML: tt.text}, domain.MacroOptions{Rate: &rate, Apply: true})
			suite.Require().NoError(err)
			suite.Equal(tt.want, first.BodyHTML)
			suite.NotEmpty(diff)

			second, diff, err := suite.service.RunMacro(ctx, tt.macro, first, domain.MacroOptions{Rate: &rate, Apply: true})
			suite.Require().NoError(err)
			suite.Empty(diff)
			suite.Equal(tt.want, second.BodyHTML)
		})
	}
}

func (suite *CurrencyMacroServiceTestSuite) TestRunMacro_OutputSymbolIsNotASource() {
	rate := decimal.RequireFromString("2")
	_, diff, err := suite.service.RunMacro(context.Background(), "aud_to_nzd", &domain.Article{BodyHTML: "A$5 and NZ$3"}, domain.MacroOptions{Rate: &rate})
	suite.Require().NoError(err)
	suite.Empty(diff)
}

func (suite *CurrencyMacroServiceTestSuite) TestRunMacro_OtherCurrencies() {
	ctx := context.Background()
	rate := decimal.RequireFromString("2")

	tests := []struct {
		macro string
		text  string
		key   string
		want  string
	}{
		{"euro_to_aud", "€5 fine", "€5", "€5 (A$10)"},
		{"gbp_to_aud", "STG 3.5bn deal", "STG 3.5bn", "STG 3.5bn (A$7.0 billion)"},
		{"nzd_to_aud", "NZ$12 cost", "NZ$12", "NZ$12 (A$24)"},
		{"aud_to_nzd", "a $6 pie", "$6", "AU$6 (NZ$12)"},
		{"chf_to_aud", "CHF 100", "CHF 100", "CHF 100 (A$200)"},
		{"cny_to_aud", "RMB 1,000", "RMB 1,000", "RMB 1,000 (A$2,000)"},
		{"jpy_to_aud", "¥300", "¥300", "¥300 (A$600)"},
	}

	for _, tt := range tests {
		suite.Run(tt.macro, func() {
			_, diff, err := suite.service.RunMacro(ctx, tt.macro, &domain.Article{BodyHTML: tt.text}, domain.MacroOptions{Rate: &rate})
			suite.Require().NoError(err)
			suite.Equal(domain.ConversionResult{tt.key: tt.want}, diff)
		})
	}
}

func (suite *CurrencyMacroServiceTestSuite) TestRunMacro_RateLookupFailureAborts() {
	ctx := context.Background()
	lookupErr := fmt.Errorf("%w: Failed to retrieve currency conversion rates", apperrors.ErrRateLookup)
	suite.mockRates.On("GetRate", ctx, "GBP", "AUD").Return(decimal.Zero, lookupErr).Once()

	out, diff, err := suite.service.RunMacro(ctx, "gbp_to_aud", &domain.Article{BodyHTML: "£10"}, domain.MacroOptions{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateLookup)
	suite.Nil(out)
	suite.Nil(diff)
}

func (suite *CurrencyMacroServiceTestSuite) TestRunMacro_UnknownMacro() {
	_, _, err := suite.service.RunMacro(context.Background(), "btc_to_aud", &domain.Article{}, domain.MacroOptions{})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyMacroServiceTestSuite) TestRunMacro_InvalidInput() {
	ctx := context.Background()
	_, _, err := suite.service.RunMacro(ctx, "usd_to_aud", nil, domain.MacroOptions{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	negative := decimal.RequireFromString("-1")
	_, _, err = suite.service.RunMacro(ctx, "usd_to_aud", &domain.Article{}, domain.MacroOptions{Rate: &negative})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCurrencyMacroServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyMacroServiceTestSuite))
}

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
	"github.com/SscSPs/newswire_macros/internal/dto"
	"github.com/SscSPs/newswire_macros/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateReaderSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateReaderSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateReaderSvc) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
	}
}

// listExchangeRates godoc
// @Summary List the cached exchange rates
// @Description Returns the rate table, fetching it from the rate service when the cached copy has expired
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRateTableResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Rate service unavailable"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rates"
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.exchangeRateService.GetAllRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateTableResponse(table))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the multiplier converting an amount in one currency into another
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Rate service unavailable or currency missing"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := strings.ToUpper(c.Param("from"))
	toCode := strings.ToUpper(c.Param("to"))

	// Basic validation - service does the thorough one
	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("from", fromCode), slog.String("to", toCode))
	rate, err := h.exchangeRateService.GetRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeRateResponse{
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             rate,
	})
}

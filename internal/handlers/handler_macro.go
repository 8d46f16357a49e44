package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
	"github.com/SscSPs/newswire_macros/internal/dto"
	"github.com/SscSPs/newswire_macros/internal/middleware"
	"github.com/SscSPs/newswire_macros/internal/utils"
	"github.com/gin-gonic/gin"
)

// macroHandler handles HTTP requests related to currency macros.
type macroHandler struct {
	macroService  portssvc.CurrencyMacroSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

// newMacroHandler creates a new macroHandler.
func newMacroHandler(ms portssvc.CurrencyMacroSvcFacade, posthogClient *utils.PosthogClientWrapper) *macroHandler {
	return &macroHandler{
		macroService:  ms,
		posthogClient: posthogClient,
	}
}

// registerMacroRoutes registers routes related to currency macros. The run
// route is wrapped by runLimits (typically the rate limiter).
func registerMacroRoutes(rg *gin.RouterGroup, macroService portssvc.CurrencyMacroSvcFacade, posthogClient *utils.PosthogClientWrapper, runLimits ...gin.HandlerFunc) {
	h := newMacroHandler(macroService, posthogClient)

	macros := rg.Group("/macros")
	{
		macros.GET("", h.listMacros)
		macros.POST("/:name", append(runLimits, h.runMacro)...)
	}
}

// listMacros godoc
// @Summary List currency macros
// @Description Lists the currency conversion macros offered to editors
// @Tags macros
// @Produce  json
// @Success 200 {object} dto.ListMacrosResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /macros [get]
func (h *macroHandler) listMacros(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListMacrosResponse{Macros: h.macroService.ListMacros()})
}

// runMacro godoc
// @Summary Run a currency macro
// @Description Finds monetary amounts in the article text, converts them and returns the replacement map
// @Tags macros
// @Accept  json
// @Produce  json
// @Param   name path string true "Macro name, e.g. usd_to_aud"
// @Param   request body dto.RunMacroRequest true "Article and options"
// @Success 200 {object} dto.RunMacroResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Macro not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Rate service unavailable"
// @Failure 500 {object} map[string]string "Failed to run macro"
// @Security BearerAuth
// @Router /macros/{name} [post]
func (h *macroHandler) runMacro(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	var req dto.RunMacroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RunMacro", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("macro", name), slog.String("article_id", req.Article.ID))
	logger.Info("Received request to run currency macro", slog.Bool("rate_override", req.Rate != nil), slog.Bool("apply", req.Apply))

	article, diff, err := h.macroService.RunMacro(c.Request.Context(), name, req.Article, req.ToMacroOptions())
	if err != nil {
		respondWithError(c, logger, err, "Failed to run macro")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "currency_macro_run", map[string]any{
		"macro":        name,
		"replacements": len(diff),
		"applied":      req.Apply,
	})

	logger.Info("Currency macro completed", slog.Int("replacements", len(diff)))
	c.JSON(http.StatusOK, dto.RunMacroResponse{
		Macro:   name,
		Article: article,
		Diff:    diff,
	})
}

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

// formatterHandler handles HTTP requests that prepare articles for subscribers.
type formatterHandler struct {
	formatterService portssvc.ArticleFormatterSvc
}

// registerFormatterRoutes registers routes related to subscriber formats.
func registerFormatterRoutes(rg *gin.RouterGroup, formatterService portssvc.ArticleFormatterSvc) {
	h := &formatterHandler{formatterService: formatterService}
	rg.POST("/formatters/:format", h.formatArticle)
}

// formatArticle godoc
// @Summary Format an article for a subscriber
// @Description Produces a copy of a text article for the given subscriber format (e.g. "NZN NEWSCENTRE")
// @Tags formatters
// @Accept  json
// @Produce  json
// @Param   format path string true "Subscriber format, URL encoded"
// @Param   request body dto.FormatArticleRequest true "Article and category"
// @Success 200 {object} dto.FormatArticleResponse
// @Failure 400 {object} map[string]string "Unsupported format or item type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to format article"
// @Security BearerAuth
// @Router /formatters/{format} [post]
func (h *formatterHandler) formatArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	format := strings.ToUpper(strings.TrimSpace(c.Param("format")))

	var req dto.FormatArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatArticle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	formatted, err := h.formatterService.Format(c.Request.Context(), req.Article, req.Category, format)
	if err != nil {
		respondWithError(c, logger.With(slog.String("format", format)), err, "Failed to format article")
		return
	}

	c.JSON(http.StatusOK, dto.FormatArticleResponse{Format: format, Article: formatted})
}

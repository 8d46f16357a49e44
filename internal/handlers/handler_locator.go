package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
	"github.com/SscSPs/newswire_macros/internal/dto"
	"github.com/SscSPs/newswire_macros/internal/middleware"
	"github.com/gin-gonic/gin"
)

type locatorHandler struct {
	locatorService portssvc.LocatorSvcFacade
}

func registerLocatorRoutes(rg *gin.RouterGroup, locatorService portssvc.LocatorSvcFacade) {
	h := &locatorHandler{locatorService: locatorService}
	rg.POST("/locator", h.mapLocator)
}

// mapLocator godoc
// @Summary Derive the locator of an article
// @Description Returns the locator code for the article under the given category and the headline prefixed with it
// @Tags locator
// @Accept  json
// @Produce  json
// @Param   request body dto.LocatorRequest true "Article and category"
// @Success 200 {object} dto.LocatorResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /locator [post]
func (h *locatorHandler) mapLocator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LocatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MapLocator", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category := req.Category
	if category == "" {
		category = req.Article.PrimaryCategory()
	}

	locator, found := h.locatorService.MapLocator(req.Article, category)
	c.JSON(http.StatusOK, dto.LocatorResponse{
		Locator:  locator,
		Found:    found,
		Headline: h.locatorService.FormattedHeadline(req.Article, category),
	})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
)

// savingHandler handles HTTP requests related to savings deposits.
type savingHandler struct {
	savingService portssvc.SavingSvcFacade
}

func newSavingHandler(ss portssvc.SavingSvcFacade) *savingHandler {
	return &savingHandler{savingService: ss}
}

func registerSavingRoutes(rg *gin.RouterGroup, savingService portssvc.SavingSvcFacade) {
	h := newSavingHandler(savingService)

	savings := rg.Group("/savings")
	{
		savings.GET("", h.listSavings)
		savings.POST("", h.createSaving)
		savings.PUT("/:id", h.updateSaving)
		savings.DELETE("/:id", h.deleteSaving)
	}
}

func (h *savingHandler) createSaving(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create saving request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	saving, err := h.savingService.CreateSaving(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saving)
}

func (h *savingHandler) listSavings(c *gin.Context) {
	savings, err := h.savingService.ListSavings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, savings)
}

func (h *savingHandler) updateSaving(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update saving request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	saving, err := h.savingService.UpdateSaving(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saving)
}

func (h *savingHandler) deleteSaving(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.savingService.DeleteSaving(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

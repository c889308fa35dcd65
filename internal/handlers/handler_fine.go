package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
)

// fineHandler handles HTTP requests related to fines.
type fineHandler struct {
	fineService portssvc.FineSvcFacade
}

func newFineHandler(fs portssvc.FineSvcFacade) *fineHandler {
	return &fineHandler{fineService: fs}
}

func registerFineRoutes(rg *gin.RouterGroup, fineService portssvc.FineSvcFacade) {
	h := newFineHandler(fineService)

	fines := rg.Group("/fines")
	{
		fines.GET("", h.listFines)
		fines.POST("", h.createFine)
		fines.PUT("/:id", h.updateFine)
		fines.DELETE("/:id", h.deleteFine)
	}
}

func (h *fineHandler) createFine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create fine request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	fine, err := h.fineService.CreateFine(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fine)
}

func (h *fineHandler) listFines(c *gin.Context) {
	fines, err := h.fineService.ListFines(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fines)
}

func (h *fineHandler) updateFine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update fine request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	fine, err := h.fineService.UpdateFine(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fine)
}

func (h *fineHandler) deleteFine(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.fineService.DeleteFine(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

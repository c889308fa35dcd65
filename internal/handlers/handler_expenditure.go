package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
)

// expenditureHandler handles HTTP requests related to expenditures.
type expenditureHandler struct {
	expenditureService portssvc.ExpenditureSvcFacade
}

func newExpenditureHandler(es portssvc.ExpenditureSvcFacade) *expenditureHandler {
	return &expenditureHandler{expenditureService: es}
}

func registerExpenditureRoutes(rg *gin.RouterGroup, expenditureService portssvc.ExpenditureSvcFacade) {
	h := newExpenditureHandler(expenditureService)

	expenditures := rg.Group("/expenditures")
	{
		expenditures.GET("", h.listExpenditures)
		expenditures.POST("", h.createExpenditure)
		expenditures.PUT("/:id", h.updateExpenditure)
		expenditures.DELETE("/:id", h.deleteExpenditure)
	}
}

func (h *expenditureHandler) createExpenditure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create expenditure request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	expenditure, err := h.expenditureService.CreateExpenditure(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expenditure)
}

func (h *expenditureHandler) listExpenditures(c *gin.Context) {
	expenditures, err := h.expenditureService.ListExpenditures(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenditures)
}

func (h *expenditureHandler) updateExpenditure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update expenditure request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	expenditure, err := h.expenditureService.UpdateExpenditure(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenditure)
}

func (h *expenditureHandler) deleteExpenditure(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.expenditureService.DeleteExpenditure(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.POST("", h.createLoan)
		loans.GET("/:id/summary", h.getLoanSummary)
		loans.PUT("/:id", h.updateLoan)
		loans.DELETE("/:id", h.deleteLoan)
		loans.POST("/recompute-status", h.recomputeStatuses)
	}
}

func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create loan request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loan)
}

func (h *loanHandler) listLoans(c *gin.Context) {
	loans, err := h.loanService.ListLoans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *loanHandler) getLoanSummary(c *gin.Context) {
	summary, err := h.loanService.GetLoanSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *loanHandler) updateLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update loan request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	loan, err := h.loanService.UpdateLoan(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *loanHandler) deleteLoan(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.loanService.DeleteLoan(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// recomputeStatuses re-derives every loan's status from current payments.
// Normally this happens automatically after payment mutations; the endpoint
// exists for repair after manual edits to the underlying repository.
func (h *loanHandler) recomputeStatuses(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if !actor.Role.CanWrite() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	changed, err := h.loanService.RecomputeStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
)

// backupHandler handles HTTP requests for snapshots and restores.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{backupService: bs}
}

func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	backups := rg.Group("/backups")
	{
		backups.GET("", h.listBackups)
		backups.POST("", h.createBackup)
		backups.POST("/restore", h.restoreBackup)
	}
}

func (h *backupHandler) createBackup(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	entry, err := h.backupService.CreateBackup(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BackupCreatedResponse{Entry: *entry})
}

func (h *backupHandler) listBackups(c *gin.Context) {
	entries, err := h.backupService.ListBackups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *backupHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RestoreBackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for restore backup request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.backupService.RestoreBackup(c.Request.Context(), actor, req.Path); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

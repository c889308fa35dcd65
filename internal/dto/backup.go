package dto

import "github.com/sahakari-app/sahakari_backend/internal/core/domain"

// RestoreBackupRequest restores every collection from one snapshot.
type RestoreBackupRequest struct {
	Path string `json:"path" binding:"required"`
}

// BackupCreatedResponse reports where a snapshot landed.
type BackupCreatedResponse struct {
	Entry domain.BackupIndexEntry `json:"entry"`
}

package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
)

// BackupSvcFacade snapshots and restores the full document set. Each
// restored collection is written independently; there is no cross-document
// atomicity.
type BackupSvcFacade interface {
	CreateBackup(ctx context.Context, actor domain.Actor) (*domain.BackupIndexEntry, error)
	ListBackups(ctx context.Context) ([]domain.BackupIndexEntry, error)
	RestoreBackup(ctx context.Context, actor domain.Actor, path string) error
}

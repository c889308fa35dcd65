package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
)

// backupServiceImpl snapshots the full document set into one file under
// backups/ and restores from it. Each collection is read and written as its
// own document; a restore is a sequence of independent writes, not a
// transaction.
type backupServiceImpl struct {
	BaseService
	store        portsrepo.DocumentStore
	index        portsrepo.CollectionRepository[domain.BackupIndexEntry]
	members      portsrepo.CollectionRepository[domain.Member]
	savings      portsrepo.CollectionRepository[domain.Saving]
	loans        portsrepo.CollectionRepository[domain.Loan]
	payments     portsrepo.CollectionRepository[domain.Payment]
	fines        portsrepo.CollectionRepository[domain.FinePayment]
	expenditures portsrepo.CollectionRepository[domain.Expenditure]
	chat         portsrepo.CollectionRepository[domain.ChatMessage]
	settings     portsrepo.SingletonRepository[domain.Settings]
}

// BackupDeps bundles the repositories a backup spans.
type BackupDeps struct {
	Store        portsrepo.DocumentStore
	Index        portsrepo.CollectionRepository[domain.BackupIndexEntry]
	Members      portsrepo.CollectionRepository[domain.Member]
	Savings      portsrepo.CollectionRepository[domain.Saving]
	Loans        portsrepo.CollectionRepository[domain.Loan]
	Payments     portsrepo.CollectionRepository[domain.Payment]
	Fines        portsrepo.CollectionRepository[domain.FinePayment]
	Expenditures portsrepo.CollectionRepository[domain.Expenditure]
	Chat         portsrepo.CollectionRepository[domain.ChatMessage]
	Settings     portsrepo.SingletonRepository[domain.Settings]
}

// NewBackupService creates the backup coordinator.
func NewBackupService(deps BackupDeps) portssvc.BackupSvcFacade {
	return &backupServiceImpl{
		store:        deps.Store,
		index:        deps.Index,
		members:      deps.Members,
		savings:      deps.Savings,
		loans:        deps.Loans,
		payments:     deps.Payments,
		fines:        deps.Fines,
		expenditures: deps.Expenditures,
		chat:         deps.Chat,
		settings:     deps.Settings,
	}
}

var _ portssvc.BackupSvcFacade = (*backupServiceImpl)(nil)

func (s *backupServiceImpl) CreateBackup(ctx context.Context, actor domain.Actor) (*domain.BackupIndexEntry, error) {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	backup, err := s.collect(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to collect documents for backup")
		return nil, err
	}
	now := time.Now().UTC()
	backup.CreatedAt = now.Format(time.RFC3339)
	backup.CreatedBy = actor.UserID

	content, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}

	path := fmt.Sprintf("%sbackup-%s.json", domain.BackupPrefix, now.Format("20060102-150405"))
	if _, err := s.store.Write(ctx, path, content, "Create backup snapshot", ""); err != nil {
		s.LogError(ctx, err, "Failed to write backup snapshot", slog.String("path", path))
		return nil, err
	}

	entry := domain.BackupIndexEntry{
		Path:      path,
		CreatedAt: backup.CreatedAt,
		CreatedBy: actor.UserID,
	}
	_, err = s.index.Mutate(ctx, fmt.Sprintf("Index backup %s", path), func(entries []domain.BackupIndexEntry) ([]domain.BackupIndexEntry, error) {
		return append(entries, entry), nil
	})
	if err != nil {
		// The snapshot itself is committed; a missing index entry only hides
		// it from the listing.
		s.LogWarn(ctx, "Backup written but index update failed",
			slog.String("path", path), slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Backup created", slog.String("path", path))
	return &entry, nil
}

func (s *backupServiceImpl) ListBackups(ctx context.Context) ([]domain.BackupIndexEntry, error) {
	entries, _, err := s.index.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list backups")
		return nil, err
	}
	return entries, nil
}

func (s *backupServiceImpl) RestoreBackup(ctx context.Context, actor domain.Actor, path string) error {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return err
	}
	if !strings.HasPrefix(path, domain.BackupPrefix) {
		return fmt.Errorf("path %s is not a backup snapshot: %w", path, apperrors.ErrValidation)
	}

	content, _, err := s.store.Read(ctx, path)
	if err != nil {
		s.LogError(ctx, err, "Failed to read backup snapshot", slog.String("path", path))
		return err
	}
	var backup domain.Backup
	if err := json.Unmarshal(content, &backup); err != nil {
		return fmt.Errorf("decoding backup %s: %w", path, err)
	}

	message := fmt.Sprintf("Restore from %s", path)
	if _, err := s.members.ReplaceAll(ctx, backup.Members, message, ""); err != nil {
		return fmt.Errorf("restoring members: %w", err)
	}
	if _, err := s.savings.ReplaceAll(ctx, backup.Savings, message, ""); err != nil {
		return fmt.Errorf("restoring savings: %w", err)
	}
	if _, err := s.loans.ReplaceAll(ctx, backup.Loans, message, ""); err != nil {
		return fmt.Errorf("restoring loans: %w", err)
	}
	if _, err := s.payments.ReplaceAll(ctx, backup.Payments, message, ""); err != nil {
		return fmt.Errorf("restoring payments: %w", err)
	}
	if _, err := s.fines.ReplaceAll(ctx, backup.Fines, message, ""); err != nil {
		return fmt.Errorf("restoring fines: %w", err)
	}
	if _, err := s.expenditures.ReplaceAll(ctx, backup.Expenditures, message, ""); err != nil {
		return fmt.Errorf("restoring expenditures: %w", err)
	}
	if _, err := s.chat.ReplaceAll(ctx, backup.ChatMessages, message, ""); err != nil {
		return fmt.Errorf("restoring chat messages: %w", err)
	}
	if _, err := s.settings.Save(ctx, backup.Settings, message, ""); err != nil {
		return fmt.Errorf("restoring settings: %w", err)
	}

	s.LogInfo(ctx, "Backup restored", slog.String("path", path))
	return nil
}

func (s *backupServiceImpl) collect(ctx context.Context) (*domain.Backup, error) {
	var backup domain.Backup
	var err error
	if backup.Members, _, err = s.members.FindAll(ctx); err != nil {
		return nil, err
	}
	if backup.Savings, _, err = s.savings.FindAll(ctx); err != nil {
		return nil, err
	}
	if backup.Loans, _, err = s.loans.FindAll(ctx); err != nil {
		return nil, err
	}
	if backup.Payments, _, err = s.payments.FindAll(ctx); err != nil {
		return nil, err
	}
	if backup.Fines, _, err = s.fines.FindAll(ctx); err != nil {
		return nil, err
	}
	if backup.Expenditures, _, err = s.expenditures.FindAll(ctx); err != nil {
		return nil, err
	}
	if backup.ChatMessages, _, err = s.chat.FindAll(ctx); err != nil {
		return nil, err
	}
	if backup.Settings, _, err = s.settings.Find(ctx); err != nil {
		return nil, err
	}
	return &backup, nil
}

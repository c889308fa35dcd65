package services_test

import (
	"time"

	"github.com/sahakari-app/sahakari_backend/internal/adapters/remotedoc"
	"github.com/sahakari-app/sahakari_backend/internal/adapters/remotedoc/memoryfs"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
)

// The service suites run against the in-memory backend rather than hand
// mocked repositories: the behaviors under test (conflict retries, skipped
// writes, cross-document recomputes) live in the interaction between the
// services and the store's versioning, which mocks would just restate.
type fixture struct {
	backend *memoryfs.Backend
	store   *remotedoc.Store

	members      *remotedoc.Collection[domain.Member]
	savings      *remotedoc.Collection[domain.Saving]
	loans        *remotedoc.Collection[domain.Loan]
	payments     *remotedoc.Collection[domain.Payment]
	fines        *remotedoc.Collection[domain.FinePayment]
	expenditures *remotedoc.Collection[domain.Expenditure]
	chat         *remotedoc.Collection[domain.ChatMessage]
	backupIndex  *remotedoc.Collection[domain.BackupIndexEntry]
	settings     *remotedoc.Singleton[domain.Settings]
}

func newFixture() *fixture {
	backend := memoryfs.NewBackend()
	store := remotedoc.NewStore(backend, remotedoc.RetryPolicy{
		MaxConflictRetries: 1,
		Backoff:            time.Millisecond,
	})
	return &fixture{
		backend:      backend,
		store:        store,
		members:      remotedoc.NewCollection[domain.Member](store, domain.MembersPath),
		savings:      remotedoc.NewCollection[domain.Saving](store, domain.SavingsPath),
		loans:        remotedoc.NewCollection[domain.Loan](store, domain.LoansPath),
		payments:     remotedoc.NewCollection[domain.Payment](store, domain.PaymentsPath),
		fines:        remotedoc.NewCollection[domain.FinePayment](store, domain.FinesPath),
		expenditures: remotedoc.NewCollection[domain.Expenditure](store, domain.ExpendituresPath),
		chat:         remotedoc.NewCollection[domain.ChatMessage](store, domain.ChatMessagesPath),
		backupIndex:  remotedoc.NewCollection[domain.BackupIndexEntry](store, domain.BackupIndexPath),
		settings:     remotedoc.NewSingleton[domain.Settings](store, domain.SettingsPath),
	}
}

var (
	adminActor     = domain.Actor{UserID: "admin", Role: domain.RoleAdmin}
	treasurerActor = domain.Actor{UserID: "treasurer", Role: domain.RoleTreasurer}
	viewerActor    = domain.Actor{UserID: "viewer", Role: domain.RoleViewer}
)

package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/core/services"
)

type BackupServiceTestSuite struct {
	suite.Suite
	fx      *fixture
	service portssvc.BackupSvcFacade
}

func (s *BackupServiceTestSuite) SetupTest() {
	s.fx = newFixture()
	s.service = services.NewBackupService(services.BackupDeps{
		Store:        s.fx.store,
		Index:        s.fx.backupIndex,
		Members:      s.fx.members,
		Savings:      s.fx.savings,
		Loans:        s.fx.loans,
		Payments:     s.fx.payments,
		Fines:        s.fx.fines,
		Expenditures: s.fx.expenditures,
		Chat:         s.fx.chat,
		Settings:     s.fx.settings,
	})

	ctx := context.Background()
	_, err := s.fx.members.ReplaceAll(ctx, []domain.Member{
		{ID: 1, Name: "Sita", IsActive: true},
	}, "seed", "")
	s.Require().NoError(err)
	_, err = s.fx.savings.ReplaceAll(ctx, []domain.Saving{
		{ID: "s1", MemberID: 1, Amount: decimal.NewFromInt(1000), Date: "2025-07-01"},
	}, "seed", "")
	s.Require().NoError(err)
	_, err = s.fx.settings.Save(ctx, domain.Settings{OrgName: "Sahakari", Currency: "Rs."}, "seed", "")
	s.Require().NoError(err)
}

func (s *BackupServiceTestSuite) TestCreateBackupAdminOnly() {
	_, err := s.service.CreateBackup(context.Background(), treasurerActor)
	s.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (s *BackupServiceTestSuite) TestCreateListAndRestore() {
	ctx := context.Background()

	entry, err := s.service.CreateBackup(ctx, adminActor)
	s.Require().NoError(err)
	s.True(strings.HasPrefix(entry.Path, domain.BackupPrefix))
	s.Equal("admin", entry.CreatedBy)

	entries, err := s.service.ListBackups(ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(entry.Path, entries[0].Path)

	// Wreck the live data, then restore the snapshot.
	_, err = s.fx.members.ReplaceAll(ctx, []domain.Member{}, "wipe", "")
	s.Require().NoError(err)
	_, err = s.fx.settings.Save(ctx, domain.Settings{OrgName: "Renamed"}, "wipe", "")
	s.Require().NoError(err)

	s.Require().NoError(s.service.RestoreBackup(ctx, adminActor, entry.Path))

	members, _, err := s.fx.members.FindAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal("Sita", members[0].Name)

	settings, _, err := s.fx.settings.Find(ctx)
	s.Require().NoError(err)
	s.Equal("Sahakari", settings.OrgName)
}

func (s *BackupServiceTestSuite) TestRestoreRejectsForeignPath() {
	err := s.service.RestoreBackup(context.Background(), adminActor, "data/members.json")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *BackupServiceTestSuite) TestRestoreMissingSnapshot() {
	err := s.service.RestoreBackup(context.Background(), adminActor, "backups/backup-nope.json")
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestBackupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BackupServiceTestSuite))
}

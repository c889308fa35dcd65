package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sahakari-app/sahakari_backend/internal/adapters/remotedoc"
	"github.com/sahakari-app/sahakari_backend/internal/adapters/remotedoc/githubfs"
	"github.com/sahakari-app/sahakari_backend/internal/adapters/remotedoc/memoryfs"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/core/services"
	"github.com/sahakari-app/sahakari_backend/internal/handlers"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
	"github.com/sahakari-app/sahakari_backend/internal/platform/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	backend := newBackend(cfg, logger)
	store := remotedoc.NewStore(backend, remotedoc.RetryPolicy{
		MaxConflictRetries: cfg.StoreMaxConflictRetries,
		Backoff:            cfg.StoreRetryBackoff,
	})

	container := buildServices(store, cfg)

	// Seed the admin login so a fresh repository is reachable.
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := container.User.EnsureDefaultAdmin(seedCtx, cfg.DefaultAdminPassword); err != nil {
		logger.Error("Failed to ensure default admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Per-IP budget for login attempts.
	loginLimiter := limiter.New(memorystore.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  10,
	})

	handlers.RegisterRoutes(r, cfg, container, loginLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newBackend picks the GitHub contents backend when configured, otherwise an
// in-memory one so local development works without credentials.
func newBackend(cfg *config.Config, logger *slog.Logger) portsrepo.RemoteBackend {
	if cfg.UseRemoteBackend() {
		logger.Info("Using GitHub contents backend",
			slog.String("owner", cfg.GithubOwner),
			slog.String("repo", cfg.GithubRepo),
			slog.String("branch", cfg.GithubBranch))
		return githubfs.NewClient(cfg.GithubOwner, cfg.GithubRepo, cfg.GithubBranch, cfg.GithubToken)
	}
	logger.Warn("Using in-memory backend; data will not survive a restart")
	return memoryfs.NewBackend()
}

// buildServices wires the typed repositories into the service container.
func buildServices(store *remotedoc.Store, cfg *config.Config) *portssvc.ServiceContainer {
	members := remotedoc.NewCollection[domain.Member](store, domain.MembersPath)
	savings := remotedoc.NewCollection[domain.Saving](store, domain.SavingsPath)
	loans := remotedoc.NewCollection[domain.Loan](store, domain.LoansPath)
	payments := remotedoc.NewCollection[domain.Payment](store, domain.PaymentsPath)
	fines := remotedoc.NewCollection[domain.FinePayment](store, domain.FinesPath)
	expenditures := remotedoc.NewCollection[domain.Expenditure](store, domain.ExpendituresPath)
	chatMessages := remotedoc.NewCollection[domain.ChatMessage](store, domain.ChatMessagesPath)
	backupIndex := remotedoc.NewCollection[domain.BackupIndexEntry](store, domain.BackupIndexPath)
	settings := remotedoc.NewSingleton[domain.Settings](store, domain.SettingsPath)

	loanService := services.NewLoanService(loans, payments, members)
	paymentService := services.NewPaymentService(payments, loans,
		services.WithStatusRecomputer(loanService))

	return &portssvc.ServiceContainer{
		Member:      services.NewMemberService(members, savings, loans, payments, fines),
		Saving:      services.NewSavingService(savings, members),
		Loan:        loanService,
		Payment:     paymentService,
		Fine:        services.NewFineService(fines, members),
		Expenditure: services.NewExpenditureService(expenditures),
		Chat:        services.NewChatService(chatMessages, settings),
		User:        services.NewUserService(settings),
		Auth:        services.NewAuthService(settings, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		Settings:    services.NewSettingsService(settings),
		Backup: services.NewBackupService(services.BackupDeps{
			Store:        store,
			Index:        backupIndex,
			Members:      members,
			Savings:      savings,
			Loans:        loans,
			Payments:     payments,
			Fines:        fines,
			Expenditures: expenditures,
			Chat:         chatMessages,
			Settings:     settings,
		}),
		Reporting: services.NewReportingService(members, savings, loans, payments, fines, expenditures),
	}
}

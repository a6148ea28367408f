// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rental-ledger/backend/config"
	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/application/usecase/dashboard"
	"github.com/rental-ledger/backend/internal/application/usecase/property"
	"github.com/rental-ledger/backend/internal/application/usecase/report"
	"github.com/rental-ledger/backend/internal/application/usecase/transaction"
	"github.com/rental-ledger/backend/internal/infra/observability"
	"github.com/rental-ledger/backend/internal/infra/server/router"
	"github.com/rental-ledger/backend/internal/integration/adapters"
	"github.com/rental-ledger/backend/internal/integration/cache"
	"github.com/rental-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/rental-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/rental-ledger/backend/internal/integration/persistence"
)

// exportRateLimitScope namespaces the export limiter's Redis keys.
const exportRateLimitScope = "report-export"

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	Metrics   *observability.Metrics
	Selection *property.Selection
	Router    *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient keeps report snapshots in process and disables export
// rate limiting.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	propertyRepo := persistence.NewPropertyRepository(db)

	var reportStore adapter.ReportStore
	var limiterClient redis.Cmdable
	if redisClient != nil {
		reportStore = cache.NewRedisReportStore(redisClient)
		limiterClient = redisClient
	} else {
		reportStore = cache.NewMemoryReportStore()
	}

	// Create adapters/services
	metrics := observability.NewMetrics()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	selection := property.NewSelection()

	// Create property use cases
	listPropertiesUseCase := property.NewListPropertiesUseCase(propertyRepo)
	createPropertyUseCase := property.NewCreatePropertyUseCase(propertyRepo)
	selectPropertyUseCase := property.NewSelectPropertyUseCase(propertyRepo, selection)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, propertyRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, propertyRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create dashboard and report use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(transactionRepo, propertyRepo, metrics)
	generateReportUseCase := report.NewGenerateReportUseCase(transactionRepo, propertyRepo, reportStore, metrics, cfg.Report.SnapshotTTL)
	exportReportUseCase := report.NewExportReportUseCase(transactionRepo, propertyRepo, reportStore, metrics)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, redisHealthChecker(redisClient))

	propertyController := controller.NewPropertyController(
		listPropertiesUseCase,
		createPropertyUseCase,
		selectPropertyUseCase,
		selection,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	dashboardController := controller.NewDashboardController(getOverviewUseCase, selection)
	reportController := controller.NewReportController(generateReportUseCase, exportReportUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	exportLimit := cfg.Report.ExportRateLimit
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		exportLimit = 1000
	}
	exportRateLimiter := middleware.NewRateLimiter(limiterClient, exportRateLimitScope, exportLimit, cfg.Report.ExportRateWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		propertyController,
		transactionController,
		dashboardController,
		reportController,
		exportRateLimiter,
		authMiddleware,
	)
	if cfg.Metrics.Enabled {
		r.WithMetrics(metrics, metrics.Handler(), cfg.Metrics.Path)
	}

	return &Injector{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Metrics:   metrics,
		Selection: selection,
		Router:    r,
	}
}

// redisHealthChecker returns nil when Redis is not configured.
func redisHealthChecker(client *redis.Client) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}

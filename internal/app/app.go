package app

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/data"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/service"
	"github.com/guttosm/stockpulse/internal/storage"
)

// OpenSnapshotSource returns the filesystem snapshots are read from.
//
// Behavior:
//   - cfg.Data.Dir empty: the snapshots embedded in the binary.
//   - cfg.Data.Dir set: that directory, which must exist.
func OpenSnapshotSource(cfg config.Config) (fs.FS, error) {
	if cfg.Data.Dir == "" {
		return data.Snapshots(), nil
	}
	info, err := os.Stat(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %s is not a directory", cfg.Data.Dir)
	}
	return os.DirFS(cfg.Data.Dir), nil
}

// snapshotOpener is an indirection used by InitializeApp; overridden in tests.
var snapshotOpener = OpenSnapshotSource

// NewRepository builds the stock repository for cfg.
func NewRepository(cfg config.Config) (storage.StocksRepository, error) {
	fsys, err := snapshotOpener(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot source: %w", err)
	}
	source := cfg.Data.Dir
	if source == "" {
		source = "embedded"
	}
	logger.L().Info().Str("source", source).Str("file", cfg.Data.File).Msg("snapshot source configured")
	return storage.NewSnapshotRepository(fsys, cfg.Data.File), nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the snapshot source and builds the repository layer.
//   - Initializes the service layer (MarketService).
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	repo, err := NewRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewMarketService(repo)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, cfg.Server)

	healthHandler := api.NewHealthHandler(repo.Ping)
	healthHandler.Register(router)

	// Snapshots are read per request; nothing is held open between requests.
	cleanup := func() {
		logger.L().Debug().Msg("app cleanup")
	}

	return router, cleanup, nil
}

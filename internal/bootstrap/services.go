package bootstrap

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/millbrook-mfg/schedsync/config"
	"github.com/millbrook-mfg/schedsync/internal/core"
	"github.com/millbrook-mfg/schedsync/internal/data"
	"github.com/millbrook-mfg/schedsync/internal/domain/capacity"
	httpx "github.com/millbrook-mfg/schedsync/internal/http"
	"github.com/millbrook-mfg/schedsync/internal/service"
)

// Services bundles the constructed service layer.
type Services struct {
	Merge    *service.MergeService
	Move     *service.MoveService
	Settings *service.SettingsService
	Capacity *service.CapacityService
}

// BuildServices constructs the repositories and services from infrastructure handles.
func BuildServices(cfg *config.AppConfig, db *sql.DB, redisClient redis.UniversalClient, logger *slog.Logger) *Services {
	jobRepo := data.NewJobRepo(db)
	historyRepo := data.NewMoveHistoryRepo(db)
	settingsRepo := data.NewMachineSettingsRepo(db)

	var cache core.SettingsCache
	if redisClient != nil {
		cache = data.NewRedisSettingsCache(redisClient)
	}

	settings := service.NewSettingsService(service.SettingsServiceOptions{
		Repo:         settingsRepo,
		Cache:        cache,
		CacheTTL:     cfg.Capacity.SettingsCacheTTL,
		DefaultHours: cfg.Capacity.DefaultWorkingHoursPerDay,
		Logger:       logger,
	})

	return &Services{
		Merge: service.NewMergeService(service.MergeServiceOptions{
			Jobs:      jobRepo,
			BatchSize: cfg.Merge.BatchSize,
			PageSize:  cfg.Merge.PageSize,
			Logger:    logger,
		}),
		Move: service.NewMoveService(service.MoveServiceOptions{
			Jobs:    jobRepo,
			History: historyRepo,
			Logger:  logger,
		}),
		Settings: settings,
		Capacity: service.NewCapacityService(service.CapacityServiceOptions{
			Jobs:     jobRepo,
			Settings: settings,
			Thresholds: capacity.Thresholds{
				LeadingGapMinHours:  cfg.Capacity.LeadingGapMinHours,
				InternalGapMinHours: cfg.Capacity.InternalGapMinHours,
			},
			PageSize: cfg.Merge.PageSize,
			Logger:   logger,
		}),
	}
}

// NewHTTPHandler builds the HTTP handler serving the schedsync API.
func NewHTTPHandler(cfg *config.AppConfig, services *Services, logger *slog.Logger) http.Handler {
	return httpx.NewRouter(httpx.RouterServices{
		Merge:          services.Merge,
		Move:           services.Move,
		Capacity:       services.Capacity,
		Settings:       services.Settings,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		Logger:         logger,
	})
}

package httpx

import (
	"log/slog"
	"net/http"

	"github.com/millbrook-mfg/schedsync/internal/service"
)

// RouterServices holds the services needed by the HTTP router.
type RouterServices struct {
	Merge          *service.MergeService
	Move           *service.MoveService
	Capacity       *service.CapacityService
	Settings       *service.SettingsService
	MaxUploadBytes int64
	Logger         *slog.Logger
}

// NewRouter creates and configures the schedsync HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &ScheduleHandlers{
		Merge:    services.Merge,
		Move:     services.Move,
		Capacity: services.Capacity,
		Settings: services.Settings,
		Logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler)
	mux.HandleFunc("HEAD /health", healthHandler)

	mux.HandleFunc("POST /api/departments/{dept}/merge", h.handleMerge)
	mux.HandleFunc("POST /api/jobs/move", h.handleMove)
	mux.HandleFunc("GET /api/departments/{dept}/jobs/{processOrder}/history", h.handleMoveHistory)
	mux.HandleFunc("GET /api/departments/{dept}/machines", h.handleMachineSchedules)
	mux.HandleFunc("GET /api/departments/{dept}/machines/{machine}/idle-windows", h.handleIdleWindows)
	mux.HandleFunc("GET /api/departments/{dept}/gantt", h.handleGantt)
	mux.HandleFunc("PUT /api/machines/{machine}/settings", h.handleUpsertMachineSettings)
	mux.HandleFunc("DELETE /api/departments/{dept}/jobs", h.handleClearDepartment)
	mux.HandleFunc("DELETE /api/jobs", h.handleClearAll)

	var handler http.Handler = mux
	handler = MaxBytes(services.MaxUploadBytes)(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

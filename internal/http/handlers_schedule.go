package httpx

import (
	"log/slog"
	"net/http"

	"github.com/millbrook-mfg/schedsync/internal/domain/model"
	"github.com/millbrook-mfg/schedsync/internal/service"
)

// ScheduleHandlers serves the schedule synchronization and capacity endpoints.
type ScheduleHandlers struct {
	Merge    *service.MergeService
	Move     *service.MoveService
	Capacity *service.CapacityService
	Settings *service.SettingsService
	Logger   *slog.Logger
}

// mergeUploadBody is the JSON body of a merge upload. The rows come from the
// external parser already normalized; the actor comes from the auth collaborator.
type mergeUploadBody struct {
	Jobs        []model.UploadedJob `json:"jobs"`
	ActorID     string              `json:"actor_id"`
	SourceLabel string              `json:"source_label,omitempty"`
}

// handleMerge reconciles one department upload: POST /api/departments/{dept}/merge.
func (h *ScheduleHandlers) handleMerge(w http.ResponseWriter, r *http.Request) {
	dept, ok := pathDepartment(w, r)
	if !ok {
		return
	}

	var body mergeUploadBody
	if !DecodeJSON(w, r, &body) {
		return
	}

	result, err := h.Merge.MergeJobs(r.Context(), model.MergeRequest{
		Department:  dept,
		Jobs:        body.Jobs,
		ActorID:     body.ActorID,
		SourceLabel: body.SourceLabel,
	})
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "merge failed", "department", dept, "error", err)
		WriteServiceError(w, err, result)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// handleMove applies a manual override: POST /api/jobs/move.
func (h *ScheduleHandlers) handleMove(w http.ResponseWriter, r *http.Request) {
	var req model.MoveJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Move.MoveJob(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, nil)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// handleMoveHistory returns a job's audit trail:
// GET /api/departments/{dept}/jobs/{processOrder}/history.
func (h *ScheduleHandlers) handleMoveHistory(w http.ResponseWriter, r *http.Request) {
	dept, ok := pathDepartment(w, r)
	if !ok {
		return
	}

	entries, err := h.Move.History(r.Context(), dept, r.PathValue("processOrder"))
	if err != nil {
		WriteServiceError(w, err, nil)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}

// handleMachineSchedules returns per-machine aggregates:
// GET /api/departments/{dept}/machines.
func (h *ScheduleHandlers) handleMachineSchedules(w http.ResponseWriter, r *http.Request) {
	dept, ok := pathDepartment(w, r)
	if !ok {
		return
	}

	schedules, err := h.Capacity.MachineSchedules(r.Context(), dept)
	if err != nil {
		WriteServiceError(w, err, nil)
		return
	}
	WriteJSON(w, http.StatusOK, schedules)
}

// handleIdleWindows returns free-time gaps for one machine:
// GET /api/departments/{dept}/machines/{machine}/idle-windows.
func (h *ScheduleHandlers) handleIdleWindows(w http.ResponseWriter, r *http.Request) {
	dept, ok := pathDepartment(w, r)
	if !ok {
		return
	}

	windows, err := h.Capacity.IdleWindows(r.Context(), dept, r.PathValue("machine"))
	if err != nil {
		WriteServiceError(w, err, nil)
		return
	}
	WriteJSON(w, http.StatusOK, windows)
}

// handleGantt returns the timeline projection: GET /api/departments/{dept}/gantt.
func (h *ScheduleHandlers) handleGantt(w http.ResponseWriter, r *http.Request) {
	dept, ok := pathDepartment(w, r)
	if !ok {
		return
	}

	gantt, err := h.Capacity.GanttJobs(r.Context(), dept)
	if err != nil {
		WriteServiceError(w, err, nil)
		return
	}
	WriteJSON(w, http.StatusOK, gantt)
}

// handleClearDepartment removes one department's jobs:
// DELETE /api/departments/{dept}/jobs.
func (h *ScheduleHandlers) handleClearDepartment(w http.ResponseWriter, r *http.Request) {
	dept, ok := pathDepartment(w, r)
	if !ok {
		return
	}

	removed, err := h.Merge.ClearDepartment(r.Context(), dept)
	if err != nil {
		WriteServiceError(w, err, nil)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

// handleClearAll removes every job: DELETE /api/jobs.
func (h *ScheduleHandlers) handleClearAll(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Merge.ClearAll(r.Context())
	if err != nil {
		WriteServiceError(w, err, nil)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

// machineSettingsBody is the JSON body of a working-hours update.
type machineSettingsBody struct {
	WorkingHoursPerDay float64 `json:"working_hours_per_day"`
}

// handleUpsertMachineSettings stores one machine's working hours:
// PUT /api/machines/{machine}/settings.
func (h *ScheduleHandlers) handleUpsertMachineSettings(w http.ResponseWriter, r *http.Request) {
	var body machineSettingsBody
	if !DecodeJSON(w, r, &body) {
		return
	}

	saved, err := h.Settings.SetWorkingHours(r.Context(), r.PathValue("machine"), body.WorkingHoursPerDay)
	if err != nil {
		WriteServiceError(w, err, nil)
		return
	}
	WriteJSON(w, http.StatusOK, saved)
}

// pathDepartment extracts and validates the {dept} path segment.
func pathDepartment(w http.ResponseWriter, r *http.Request) (model.Department, bool) {
	var dept model.Department
	if err := dept.UnmarshalText([]byte(r.PathValue("dept"))); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_department", Err: err})
		return "", false
	}
	return dept, true
}

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/millbrook-mfg/schedsync/internal/data"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
	"github.com/millbrook-mfg/schedsync/internal/mocks"
	"github.com/millbrook-mfg/schedsync/internal/service"
	"github.com/millbrook-mfg/schedsync/internal/testutil"
)

type routerMocks struct {
	jobs     *mocks.MockJobRepository
	history  *mocks.MockMoveHistoryRepository
	settings *mocks.MockMachineSettingsRepository
}

// newTestRouter wires real services over mock repositories.
func newTestRouter(t *testing.T) (routerMocks, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := routerMocks{
		jobs:     mocks.NewMockJobRepository(ctrl),
		history:  mocks.NewMockMoveHistoryRepository(ctrl),
		settings: mocks.NewMockMachineSettingsRepository(ctrl),
	}
	clock := data.NewFixedTimeProvider(testutil.TestTime())

	router := NewRouter(RouterServices{
		Merge: service.NewMergeService(service.MergeServiceOptions{Jobs: m.jobs}),
		Move: service.NewMoveService(service.MoveServiceOptions{
			Jobs:         m.jobs,
			History:      m.history,
			TimeProvider: clock,
		}),
		Capacity: service.NewCapacityService(service.CapacityServiceOptions{
			Jobs:         m.jobs,
			TimeProvider: clock,
		}),
		Settings:       service.NewSettingsService(service.SettingsServiceOptions{Repo: m.settings}),
		MaxUploadBytes: 1 << 20,
	})
	return m, router
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_Merge_Success(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	m.jobs.EXPECT().
		ListByDepartment(gomock.Any(), model.DepartmentMilling, gomock.Any()).
		Return(nil, nil).
		Times(1)
	m.jobs.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		Return(1, nil).
		Times(1)

	body := `{
		"actor_id": "planner-1",
		"source_label": "export-12",
		"jobs": [
			{"process_order": "PO100", "machine": "M1", "start_time": "2025-03-10T08:00:00Z", "duration_hours": 4, "qty": 10}
		]
	}`
	rec := doRequest(t, router, http.MethodPost, "/api/departments/milling/merge", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var result model.MergeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, model.MergeResult{Added: 1}, result)
}

func TestRouter_Merge_InvalidDepartment(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/departments/painting/merge", `{"actor_id":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_department")
}

func TestRouter_Merge_MalformedBody(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/departments/milling/merge", `{"actor_id": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_json")
}

func TestRouter_Merge_BatchFailureIncludesPartialResult(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	persisted := []model.Job{{
		ID:           "id-1",
		ProcessOrder: "PO200",
		Machine:      "M1",
		Department:   model.DepartmentMilling,
		StartTime:    testutil.TestTime(),
	}}

	m.jobs.EXPECT().
		ListByDepartment(gomock.Any(), model.DepartmentMilling, gomock.Any()).
		Return(persisted, nil).
		Times(1)
	m.jobs.EXPECT().
		DeleteBatch(gomock.Any(), model.DepartmentMilling, []string{"PO200"}).
		Return(0, errors.New("connection reset")).
		Times(1)

	rec := doRequest(t, router, http.MethodPost, "/api/departments/milling/merge",
		`{"actor_id": "planner-1", "jobs": []}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body struct {
		Error      string             `json:"error"`
		Phase      string             `json:"phase"`
		BatchIndex int                `json:"batch_index"`
		Keys       []string           `json:"keys"`
		Partial    *model.MergeResult `json:"partial_result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "batch_failed", body.Error)
	assert.Equal(t, "remove", body.Phase)
	assert.Equal(t, 0, body.BatchIndex)
	assert.Equal(t, []string{"PO200"}, body.Keys)
	require.NotNil(t, body.Partial)
	assert.Equal(t, model.MergeResult{}, *body.Partial)
}

func TestRouter_Move_Success(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	current := &model.Job{
		ID:            "id-1",
		ProcessOrder:  "PO100",
		Machine:       "M1",
		Department:    model.DepartmentMilling,
		StartTime:     testutil.TestTime(),
		DurationHours: 4,
	}
	moved := *current
	moved.Machine = "M2"
	moved.IsManuallyMoved = true

	m.jobs.EXPECT().
		GetByKey(gomock.Any(), model.DepartmentMilling, "PO100").
		Return(current, nil).
		Times(1)
	m.history.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&model.MoveHistoryEntry{ID: "hist-1"}, nil).
		Times(1)
	m.jobs.EXPECT().
		ApplyMove(gomock.Any(), model.DepartmentMilling, "PO100", gomock.Any()).
		Return(&moved, nil).
		Times(1)

	body := `{
		"process_order": "PO100",
		"department": "milling",
		"to_machine": "M2",
		"new_duration_hours": 4,
		"actor_id": "supervisor-1"
	}`
	rec := doRequest(t, router, http.MethodPost, "/api/jobs/move", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "M2", got.Machine)
	assert.True(t, got.IsManuallyMoved)
}

func TestRouter_Move_NotFound(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	m.jobs.EXPECT().
		GetByKey(gomock.Any(), model.DepartmentMilling, "PO404").
		Return(nil, data.ErrJobNotFound).
		Times(1)

	body := `{
		"process_order": "PO404",
		"department": "milling",
		"to_machine": "M2",
		"actor_id": "supervisor-1"
	}`
	rec := doRequest(t, router, http.MethodPost, "/api/jobs/move", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestRouter_MoveHistory(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	m.history.EXPECT().
		ListByJob(gomock.Any(), model.DepartmentMilling, "PO100").
		Return([]model.MoveHistoryEntry{{
			ID:           "hist-1",
			ProcessOrder: "PO100",
			Department:   model.DepartmentMilling,
			ToMachine:    "M2",
		}}, nil).
		Times(1)

	rec := doRequest(t, router, http.MethodGet, "/api/departments/milling/jobs/PO100/history", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []model.MoveHistoryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "M2", entries[0].ToMachine)
}

func TestRouter_MachineSchedules(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	jobs := []model.Job{{
		ID:            "id-1",
		ProcessOrder:  "PO100",
		Machine:       "M1",
		Department:    model.DepartmentMilling,
		StartTime:     testutil.TestTime().Add(time.Hour),
		DurationHours: 4,
	}}
	m.jobs.EXPECT().
		ListByDepartment(gomock.Any(), model.DepartmentMilling, gomock.Any()).
		Return(jobs, nil).
		Times(1)

	rec := doRequest(t, router, http.MethodGet, "/api/departments/milling/machines", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var schedules []model.MachineSchedule
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schedules))
	require.Len(t, schedules, 1)
	assert.Equal(t, "M1", schedules[0].Machine)
	assert.InDelta(t, 4.0, schedules[0].TotalScheduledHours, 1e-9)
}

func TestRouter_IdleWindows(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	m.jobs.EXPECT().
		ListByDepartment(gomock.Any(), model.DepartmentTurning, gomock.Any()).
		Return(nil, nil).
		Times(1)

	rec := doRequest(t, router, http.MethodGet, "/api/departments/turning/machines/T1/idle-windows", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_ClearDepartment(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	m.jobs.EXPECT().
		ClearDepartment(gomock.Any(), model.DepartmentMisc).
		Return(9, nil).
		Times(1)

	rec := doRequest(t, router, http.MethodDelete, "/api/departments/misc/jobs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":9}`, rec.Body.String())
}

func TestRouter_ClearAll(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	m.jobs.EXPECT().
		ClearAll(gomock.Any()).
		Return(20, nil).
		Times(1)

	rec := doRequest(t, router, http.MethodDelete, "/api/jobs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":20}`, rec.Body.String())
}

func TestRouter_UpsertMachineSettings(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)

	m.settings.EXPECT().
		Upsert(gomock.Any(), "M1", 10.0).
		Return(&model.MachineSettings{Machine: "M1", WorkingHoursPerDay: 10}, nil).
		Times(1)

	rec := doRequest(t, router, http.MethodPut, "/api/machines/M1/settings",
		`{"working_hours_per_day": 10}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var saved model.MachineSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "M1", saved.Machine)
	assert.InDelta(t, 10.0, saved.WorkingHoursPerDay, 1e-9)
}

func TestRouter_UpsertMachineSettings_InvalidHours(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/machines/M1/settings",
		`{"working_hours_per_day": 0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation")
}

func TestRouter_BodyTooLarge(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	jobs := mocks.NewMockJobRepository(ctrl)
	router := NewRouter(RouterServices{
		Merge:          service.NewMergeService(service.MergeServiceOptions{Jobs: jobs}),
		Move:           service.NewMoveService(service.MoveServiceOptions{Jobs: jobs, History: mocks.NewMockMoveHistoryRepository(ctrl)}),
		Capacity:       service.NewCapacityService(service.CapacityServiceOptions{Jobs: jobs}),
		MaxUploadBytes: 16,
	})

	rec := doRequest(t, router, http.MethodPost, "/api/departments/milling/merge",
		`{"actor_id": "planner-1", "jobs": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

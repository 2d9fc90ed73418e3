package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/millbrook-mfg/schedsync/internal/data"
	"github.com/millbrook-mfg/schedsync/internal/domain/capacity"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
	apperrors "github.com/millbrook-mfg/schedsync/internal/errors"
	"github.com/millbrook-mfg/schedsync/internal/mocks"
)

var capacityNow = time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)

// stubHoursProvider returns a fixed working-hours map.
type stubHoursProvider struct {
	hours map[string]float64
	err   error
}

func (s *stubHoursProvider) WorkingHours(_ context.Context, _ []string) (map[string]float64, error) {
	return s.hours, s.err
}

func (s *stubHoursProvider) DefaultHours() float64 { return 24 }

func newCapacityService(t *testing.T, settings WorkingHoursProvider) (*mocks.MockJobRepository, *CapacityService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	jobRepo := mocks.NewMockJobRepository(ctrl)
	service := NewCapacityService(CapacityServiceOptions{
		Jobs:         jobRepo,
		Settings:     settings,
		Thresholds:   capacity.DefaultThresholds(),
		TimeProvider: data.NewFixedTimeProvider(capacityNow),
	})
	return jobRepo, service
}

func capacityJob(processOrder, machine string, start time.Time, hours float64) model.Job {
	return model.Job{
		ID:            "id-" + processOrder,
		ProcessOrder:  processOrder,
		Machine:       machine,
		Department:    model.DepartmentMilling,
		StartTime:     start,
		DurationHours: hours,
		Status:        model.JobStatusScheduled,
	}
}

func TestCapacityService_MachineSchedules(t *testing.T) {
	t.Parallel()
	settings := &stubHoursProvider{hours: map[string]float64{"M1": 8, "M2": 8}}
	jobRepo, service := newCapacityService(t, settings)
	ctx := context.Background()

	jobs := []model.Job{
		capacityJob("PO1", "M1", capacityNow.Add(2*time.Hour), 4),
		capacityJob("PO2", "M2", capacityNow.Add(2*time.Hour), 6),
		capacityJob("PO3", "M1", capacityNow.Add(8*time.Hour), 1),
	}

	jobRepo.EXPECT().
		ListByDepartment(ctx, model.DepartmentMilling, gomock.Any()).
		Return(jobs, nil).
		Times(1)

	schedules, err := service.MachineSchedules(ctx, model.DepartmentMilling)
	require.NoError(t, err)
	require.Len(t, schedules, 2)

	// Busiest machine first.
	assert.Equal(t, "M2", schedules[0].Machine)
	assert.InDelta(t, 6.0, schedules[0].TotalScheduledHours, 1e-9)
	assert.Equal(t, "M1", schedules[1].Machine)
	assert.InDelta(t, 5.0, schedules[1].TotalScheduledHours, 1e-9)

	// M2: 6h of 8 working hours over one day.
	assert.InDelta(t, 75.0, schedules[0].UtilizationPercent, 1e-9)
}

func TestCapacityService_MachineSchedules_EmptyDepartment(t *testing.T) {
	t.Parallel()
	jobRepo, service := newCapacityService(t, nil)
	ctx := context.Background()

	jobRepo.EXPECT().
		ListByDepartment(ctx, model.DepartmentTurning, gomock.Any()).
		Return(nil, nil).
		Times(1)

	schedules, err := service.MachineSchedules(ctx, model.DepartmentTurning)
	require.NoError(t, err)
	assert.Empty(t, schedules)
	assert.NotNil(t, schedules)
}

func TestCapacityService_MachineSchedules_SettingsErrorPropagates(t *testing.T) {
	t.Parallel()
	settings := &stubHoursProvider{err: errors.New("settings store down")}
	jobRepo, service := newCapacityService(t, settings)
	ctx := context.Background()

	jobRepo.EXPECT().
		ListByDepartment(ctx, model.DepartmentMilling, gomock.Any()).
		Return([]model.Job{capacityJob("PO1", "M1", capacityNow, 4)}, nil).
		Times(1)

	_, err := service.MachineSchedules(ctx, model.DepartmentMilling)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings store down")
}

func TestCapacityService_IdleWindows(t *testing.T) {
	t.Parallel()
	jobRepo, service := newCapacityService(t, nil)
	ctx := context.Background()

	// A 2h leading gap and a 48h gap between the two jobs.
	jobs := []model.Job{
		capacityJob("PO1", "M1", capacityNow.Add(2*time.Hour), 4),
		capacityJob("PO2", "M1", capacityNow.Add(54*time.Hour), 4),
	}

	jobRepo.EXPECT().
		ListByDepartment(ctx, model.DepartmentMilling, gomock.Any()).
		Return(jobs, nil).
		Times(1)

	windows, err := service.IdleWindows(ctx, model.DepartmentMilling, "M1")
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.InDelta(t, 2.0, windows[0].DurationHours, 1e-9)
	assert.InDelta(t, 48.0, windows[1].DurationHours, 1e-9)
}

func TestCapacityService_IdleWindows_UnknownMachine(t *testing.T) {
	t.Parallel()
	jobRepo, service := newCapacityService(t, nil)
	ctx := context.Background()

	jobRepo.EXPECT().
		ListByDepartment(ctx, model.DepartmentMilling, gomock.Any()).
		Return([]model.Job{capacityJob("PO1", "M1", capacityNow, 4)}, nil).
		Times(1)

	windows, err := service.IdleWindows(ctx, model.DepartmentMilling, "M99")
	require.NoError(t, err)
	assert.Empty(t, windows)
	assert.NotNil(t, windows)
}

func TestCapacityService_IdleWindows_MissingMachine(t *testing.T) {
	t.Parallel()
	_, service := newCapacityService(t, nil)

	_, err := service.IdleWindows(context.Background(), model.DepartmentMilling, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCapacityService_GanttJobs(t *testing.T) {
	t.Parallel()
	jobRepo, service := newCapacityService(t, nil)
	ctx := context.Background()

	jobs := []model.Job{
		capacityJob("PO2", "M2", capacityNow.Add(time.Hour), 4),
		capacityJob("PO1", "M1", capacityNow.Add(2*time.Hour), 2),
	}

	jobRepo.EXPECT().
		ListByDepartment(ctx, model.DepartmentMilling, gomock.Any()).
		Return(jobs, nil).
		Times(1)

	gantt, err := service.GanttJobs(ctx, model.DepartmentMilling)
	require.NoError(t, err)
	require.Len(t, gantt, 2)
	assert.Equal(t, "M1", gantt[0].Machine)
	assert.Equal(t, "M2", gantt[1].Machine)
	assert.Equal(t, "PO1", gantt[0].Label)
}

func TestCapacityService_InvalidDepartment(t *testing.T) {
	t.Parallel()
	_, service := newCapacityService(t, nil)
	ctx := context.Background()

	_, err := service.MachineSchedules(ctx, "painting")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = service.GanttJobs(ctx, "painting")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

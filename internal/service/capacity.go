package service

import (
	"context"
	"log/slog"

	"github.com/millbrook-mfg/schedsync/internal/core"
	"github.com/millbrook-mfg/schedsync/internal/data"
	"github.com/millbrook-mfg/schedsync/internal/domain/capacity"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
	apperrors "github.com/millbrook-mfg/schedsync/internal/errors"
)

// WorkingHoursProvider resolves the per-machine working-hours setting.
type WorkingHoursProvider interface {
	WorkingHours(ctx context.Context, machines []string) (map[string]float64, error)
	DefaultHours() float64
}

// CapacityServiceOptions groups dependencies for CapacityService.
type CapacityServiceOptions struct {
	Jobs         core.JobRepository
	Settings     WorkingHoursProvider
	Thresholds   capacity.Thresholds
	PageSize     int
	TimeProvider data.TimeProvider
	Logger       *slog.Logger
}

// CapacityService serves the read-only analytics views. It fetches a
// department snapshot once per call and hands it to the pure functions in the
// capacity package, so a concurrent merge can never mutate a set mid-derivation.
type CapacityService struct {
	jobs       core.JobRepository
	settings   WorkingHoursProvider
	thresholds capacity.Thresholds
	pageSize   int
	clock      data.TimeProvider
	logger     *slog.Logger
}

// NewCapacityService constructs a new CapacityService.
func NewCapacityService(opts CapacityServiceOptions) *CapacityService {
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = 1000
	}
	clock := opts.TimeProvider
	if clock == nil {
		clock = &data.RealTimeProvider{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	th := opts.Thresholds
	if th.LeadingGapMinHours <= 0 && th.InternalGapMinHours <= 0 {
		th = capacity.DefaultThresholds()
	}
	return &CapacityService{
		jobs:       opts.Jobs,
		settings:   opts.Settings,
		thresholds: th,
		pageSize:   pageSize,
		clock:      clock,
		logger:     logger,
	}
}

// MachineSchedules returns per-machine aggregates for one department, sorted
// by total scheduled hours descending.
func (s *CapacityService) MachineSchedules(ctx context.Context, dept model.Department) ([]model.MachineSchedule, error) {
	jobs, err := s.snapshot(ctx, dept)
	if err != nil {
		return nil, err
	}
	opts, err := s.aggregateOptions(ctx, jobs)
	if err != nil {
		return nil, err
	}
	return capacity.BuildMachineSchedules(jobs, opts), nil
}

// IdleWindows returns free-time gaps for one machine in one department.
func (s *CapacityService) IdleWindows(ctx context.Context, dept model.Department, machine string) ([]model.IdleWindow, error) {
	if machine == "" {
		return nil, apperrors.ValidationField("machine", "machine is required")
	}
	jobs, err := s.snapshot(ctx, dept)
	if err != nil {
		return nil, err
	}

	schedules := capacity.BuildMachineSchedules(jobs, capacity.Options{
		DefaultHours: s.settingsDefault(),
		Now:          s.clock.Now(),
	})
	for i := range schedules {
		if schedules[i].Machine == machine {
			return capacity.IdleWindows(schedules[i].Jobs, s.thresholds, s.clock.Now()), nil
		}
	}
	return []model.IdleWindow{}, nil
}

// GanttJobs returns the display-oriented timeline projection for one department.
func (s *CapacityService) GanttJobs(ctx context.Context, dept model.Department) ([]model.GanttJob, error) {
	jobs, err := s.snapshot(ctx, dept)
	if err != nil {
		return nil, err
	}
	return capacity.BuildGanttJobs(jobs), nil
}

func (s *CapacityService) snapshot(ctx context.Context, dept model.Department) ([]model.Job, error) {
	if !dept.Valid() {
		return nil, apperrors.Validationf("invalid department: %q", dept)
	}
	return fetchDepartmentJobs(ctx, s.jobs, dept, s.pageSize)
}

func (s *CapacityService) aggregateOptions(ctx context.Context, jobs []model.Job) (capacity.Options, error) {
	opts := capacity.Options{
		DefaultHours: s.settingsDefault(),
		Now:          s.clock.Now(),
	}
	if s.settings == nil || len(jobs) == 0 {
		return opts, nil
	}

	machines := machineNames(jobs)
	hours, err := s.settings.WorkingHours(ctx, machines)
	if err != nil {
		return opts, err
	}
	opts.WorkingHoursPerDay = hours
	return opts, nil
}

func (s *CapacityService) settingsDefault() float64 {
	if s.settings != nil {
		return s.settings.DefaultHours()
	}
	return capacity.DefaultWorkingHoursPerDay
}

func machineNames(jobs []model.Job) []string {
	seen := make(map[string]struct{}, len(jobs))
	names := make([]string, 0, len(jobs))
	for i := range jobs {
		if _, ok := seen[jobs[i].Machine]; ok {
			continue
		}
		seen[jobs[i].Machine] = struct{}{}
		names = append(names, jobs[i].Machine)
	}
	return names
}

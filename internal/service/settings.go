package service

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/millbrook-mfg/schedsync/internal/core"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
	apperrors "github.com/millbrook-mfg/schedsync/internal/errors"
)

const settingsCacheKeyPrefix = "machine_settings:"

// SettingsServiceOptions groups dependencies for SettingsService.
type SettingsServiceOptions struct {
	Repo core.MachineSettingsRepository
	// Cache is optional; when nil every lookup reads the store.
	Cache        core.SettingsCache
	CacheTTL     time.Duration
	DefaultHours float64
	Logger       *slog.Logger
}

// SettingsService resolves per-machine working hours, the externally supplied
// resource setting behind utilization. Lookups go through a Redis cache and
// concurrent misses for the same machines are collapsed with singleflight.
// Cache failures degrade to direct store reads; store failures propagate.
type SettingsService struct {
	repo         core.MachineSettingsRepository
	cache        core.SettingsCache
	ttl          time.Duration
	defaultHours float64
	logger       *slog.Logger
	group        singleflight.Group
}

// NewSettingsService constructs a new SettingsService.
func NewSettingsService(opts SettingsServiceOptions) *SettingsService {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	defaultHours := opts.DefaultHours
	if defaultHours <= 0 || defaultHours > 24 {
		defaultHours = 24
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsService{
		repo:         opts.Repo,
		cache:        opts.Cache,
		ttl:          ttl,
		defaultHours: defaultHours,
		logger:       logger,
	}
}

// DefaultHours returns the fallback working hours for machines with no setting.
func (s *SettingsService) DefaultHours() float64 { return s.defaultHours }

// WorkingHours returns the working-hours-per-day setting for each requested
// machine. Machines without a stored setting get the configured default.
func (s *SettingsService) WorkingHours(ctx context.Context, machines []string) (map[string]float64, error) {
	out := make(map[string]float64, len(machines))
	if len(machines) == 0 {
		return out, nil
	}

	var misses []string
	for _, m := range machines {
		if hours, ok := s.cachedHours(ctx, m); ok {
			out[m] = hours
		} else {
			misses = append(misses, m)
		}
	}
	if len(misses) == 0 {
		return out, nil
	}

	sort.Strings(misses)
	fetched, err, _ := s.group.Do(strings.Join(misses, ","), func() (any, error) {
		return s.fetchAndCache(ctx, misses)
	})
	if err != nil {
		return nil, err
	}
	for m, hours := range fetched.(map[string]float64) {
		out[m] = hours
	}
	return out, nil
}

// SetWorkingHours stores a machine's working-hours setting and drops its
// cache entry so the next lookup sees the new value.
func (s *SettingsService) SetWorkingHours(ctx context.Context, machine string, hours float64) (*model.MachineSettings, error) {
	machine = strings.TrimSpace(machine)
	if machine == "" {
		return nil, apperrors.ValidationField("machine", "machine is required")
	}
	if hours <= 0 || hours > 24 {
		return nil, apperrors.ValidationField("working_hours_per_day", "working_hours_per_day must be in (0, 24]")
	}

	saved, err := s.repo.Upsert(ctx, machine, hours)
	if err != nil {
		return nil, err
	}
	s.Invalidate(ctx, machine)

	s.logger.InfoContext(ctx, "machine settings updated",
		"machine", machine,
		"working_hours_per_day", hours,
	)
	return saved, nil
}

// Invalidate drops a machine's cached setting after an upsert.
func (s *SettingsService) Invalidate(ctx context.Context, machine string) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, settingsCacheKeyPrefix+machine); err != nil {
		s.logger.WarnContext(ctx, "settings cache invalidate failed", "machine", machine, "error", err)
	}
}

func (s *SettingsService) cachedHours(ctx context.Context, machine string) (float64, bool) {
	if s.cache == nil {
		return 0, false
	}
	raw, err := s.cache.Get(ctx, settingsCacheKeyPrefix+machine)
	if err != nil {
		s.logger.WarnContext(ctx, "settings cache read failed", "machine", machine, "error", err)
		return 0, false
	}
	if raw == nil {
		return 0, false
	}
	hours, parseErr := strconv.ParseFloat(string(raw), 64)
	if parseErr != nil || hours <= 0 {
		return 0, false
	}
	return hours, true
}

func (s *SettingsService) fetchAndCache(ctx context.Context, machines []string) (map[string]float64, error) {
	rows, err := s.repo.GetByMachines(ctx, machines)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(machines))
	for _, row := range rows {
		out[row.Machine] = row.WorkingHoursPerDay
	}
	// Machines with no stored setting get the default; caching that too keeps
	// repeat lookups off the store.
	for _, m := range machines {
		if _, ok := out[m]; !ok {
			out[m] = s.defaultHours
		}
	}

	if s.cache != nil {
		for m, hours := range out {
			key := settingsCacheKeyPrefix + m
			value := strconv.FormatFloat(hours, 'f', -1, 64)
			if setErr := s.cache.Set(ctx, key, []byte(value), s.ttl); setErr != nil {
				s.logger.WarnContext(ctx, "settings cache write failed", "machine", m, "error", setErr)
			}
		}
	}
	return out, nil
}

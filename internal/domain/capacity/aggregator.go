// Package capacity derives machine-level analytics from job snapshots.
//
// Everything in this package is a pure function over an already-fetched
// in-memory snapshot: no store access, no side effects. Aggregates are
// recomputed on demand rather than maintained incrementally, so a stale
// running total can never disagree with the rows it was derived from.
package capacity

import (
	"sort"
	"time"

	"github.com/millbrook-mfg/schedsync/internal/domain/model"
)

// DefaultWorkingHoursPerDay is the continuous-duty assumption used when no
// per-machine setting is available.
const DefaultWorkingHoursPerDay = 24.0

// dayKeyFormat keys hoursPerDay and hoursPerWeek map entries.
const dayKeyFormat = "2006-01-02"

// Options control schedule aggregation.
type Options struct {
	// WorkingHoursPerDay maps machine name to its configured working hours.
	// Machines absent from the map fall back to DefaultHours.
	WorkingHoursPerDay map[string]float64
	// DefaultHours is used for machines without an explicit setting.
	// Zero or negative values fall back to DefaultWorkingHoursPerDay.
	DefaultHours float64
	// Now anchors NextFreeTime for machines with no future work.
	// The zero value means time.Now().
	Now time.Time
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o Options) hoursFor(machine string) float64 {
	if h, ok := o.WorkingHoursPerDay[machine]; ok && h > 0 {
		return h
	}
	if o.DefaultHours > 0 {
		return o.DefaultHours
	}
	return DefaultWorkingHoursPerDay
}

// BuildMachineSchedules groups jobs by machine and computes per-machine
// aggregate statistics. The result is sorted by total scheduled hours
// descending so bottleneck machines surface first.
func BuildMachineSchedules(jobs []model.Job, opts Options) []model.MachineSchedule {
	if len(jobs) == 0 {
		return []model.MachineSchedule{}
	}

	now := opts.now()
	byMachine := make(map[string][]model.Job)
	for _, j := range jobs {
		byMachine[j.Machine] = append(byMachine[j.Machine], j)
	}

	schedules := make([]model.MachineSchedule, 0, len(byMachine))
	for machine, group := range byMachine {
		sort.SliceStable(group, func(i, k int) bool {
			return group[i].StartTime.Before(group[k].StartTime)
		})
		schedules = append(schedules, buildOne(machine, group, opts.hoursFor(machine), now))
	}

	sort.SliceStable(schedules, func(i, k int) bool {
		if schedules[i].TotalScheduledHours != schedules[k].TotalScheduledHours {
			return schedules[i].TotalScheduledHours > schedules[k].TotalScheduledHours
		}
		return schedules[i].Machine < schedules[k].Machine
	})
	return schedules
}

func buildOne(machine string, sorted []model.Job, workingHours float64, now time.Time) model.MachineSchedule {
	s := model.MachineSchedule{
		Machine:      machine,
		Jobs:         sorted,
		HoursPerDay:  make(map[string]float64),
		HoursPerWeek: make(map[string]float64),
		NextFreeTime: now,
	}

	maxEnd := time.Time{}
	for i := range sorted {
		j := &sorted[i]
		s.TotalScheduledHours += j.DurationHours
		day := j.StartTime.UTC().Truncate(24 * time.Hour)
		s.HoursPerDay[day.Format(dayKeyFormat)] += j.DurationHours
		s.HoursPerWeek[weekStart(day).Format(dayKeyFormat)] += j.DurationHours
		if end := j.EndTime(); end.After(maxEnd) {
			maxEnd = end
		}
	}
	if maxEnd.After(now) {
		s.NextFreeTime = maxEnd
	}

	s.UtilizationPercent = utilization(sorted, s.TotalScheduledHours, workingHours)
	return s
}

// utilization computes scheduled hours over available hours for the calendar
// span the machine's jobs cover, clamped to [0, 100].
func utilization(sorted []model.Job, totalHours, workingHours float64) float64 {
	if len(sorted) == 0 || totalHours <= 0 || workingHours <= 0 {
		return 0
	}

	firstDay := sorted[0].StartTime.UTC().Truncate(24 * time.Hour)
	lastEnd := sorted[0].EndTime()
	for i := range sorted {
		if end := sorted[i].EndTime(); end.After(lastEnd) {
			lastEnd = end
		}
	}
	lastDay := lastEnd.UTC().Truncate(24 * time.Hour)

	days := int(lastDay.Sub(firstDay).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	pct := totalHours / (workingHours * float64(days)) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// weekStart returns the Monday-aligned start of the ISO week containing day.
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

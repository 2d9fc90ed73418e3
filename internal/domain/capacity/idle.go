package capacity

import (
	"time"

	"github.com/millbrook-mfg/schedsync/internal/domain/model"
)

// Default gap thresholds. Both are policy, not structure: callers tune them
// through Thresholds without touching the detector.
const (
	// DefaultLeadingGapMinHours is the minimum size of the window between
	// now and the first scheduled job.
	DefaultLeadingGapMinHours = 1.0
	// DefaultInternalGapMinHours is the minimum size of a window between
	// two consecutive jobs.
	DefaultInternalGapMinHours = 8.0
)

// Thresholds are the minimum gap sizes, in hours, for idle window detection.
type Thresholds struct {
	LeadingGapMinHours  float64
	InternalGapMinHours float64
}

// DefaultThresholds returns the standard detection thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LeadingGapMinHours:  DefaultLeadingGapMinHours,
		InternalGapMinHours: DefaultInternalGapMinHours,
	}
}

func (t Thresholds) sanitized() Thresholds {
	if t.LeadingGapMinHours <= 0 {
		t.LeadingGapMinHours = DefaultLeadingGapMinHours
	}
	if t.InternalGapMinHours <= 0 {
		t.InternalGapMinHours = DefaultInternalGapMinHours
	}
	return t
}

// IdleWindows computes free-time gaps for one machine's job list. The input
// must already be sorted ascending by start time, as produced by
// BuildMachineSchedules. Returns an empty slice for an empty job list.
func IdleWindows(sorted []model.Job, th Thresholds, now time.Time) []model.IdleWindow {
	windows := []model.IdleWindow{}
	if len(sorted) == 0 {
		return windows
	}
	th = th.sanitized()
	if now.IsZero() {
		now = time.Now()
	}

	// Leading gap between now and the first scheduled job.
	if first := &sorted[0]; first.StartTime.After(now) {
		gap := first.StartTime.Sub(now).Hours()
		if gap >= th.LeadingGapMinHours {
			windows = append(windows, model.IdleWindow{
				Start:         now,
				End:           first.StartTime,
				DurationHours: gap,
				BeforeJob:     first,
			})
		}
	}

	for i := 0; i < len(sorted)-1; i++ {
		cur, next := &sorted[i], &sorted[i+1]
		end := cur.EndTime()
		gap := next.StartTime.Sub(end).Hours()
		if gap >= th.InternalGapMinHours {
			windows = append(windows, model.IdleWindow{
				Start:         end,
				End:           next.StartTime,
				DurationHours: gap,
				AfterJob:      cur,
				BeforeJob:     next,
			})
		}
	}
	return windows
}

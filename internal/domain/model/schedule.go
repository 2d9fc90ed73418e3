package model

import "time"

// MachineSchedule is a derived, per-machine aggregate view. It is never
// persisted; it is computed on demand from a snapshot of current jobs.
type MachineSchedule struct {
	Machine             string             `json:"machine"`
	Jobs                []Job              `json:"jobs"`
	TotalScheduledHours float64            `json:"total_scheduled_hours"`
	HoursPerDay         map[string]float64 `json:"hours_per_day"`
	HoursPerWeek        map[string]float64 `json:"hours_per_week"`
	NextFreeTime        time.Time          `json:"next_free_time"`
	UtilizationPercent  float64            `json:"utilization_percent"`
}

// IdleWindow is a contiguous span of time on one machine with no scheduled job.
type IdleWindow struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"duration_hours"`
	// AfterJob is the job immediately preceding the gap, if any.
	AfterJob *Job `json:"after_job,omitempty"`
	// BeforeJob is the job immediately following the gap, if any.
	BeforeJob *Job `json:"before_job,omitempty"`
}

// GanttJob is a display-oriented projection of one job onto a timeline row.
type GanttJob struct {
	Machine         string     `json:"machine"`
	ProcessOrder    string     `json:"process_order"`
	ProductionOrder string     `json:"production_order"`
	Label           string     `json:"label"`
	Customer        string     `json:"customer"`
	Start           time.Time  `json:"start"`
	End             time.Time  `json:"end"`
	Status          string     `json:"status"`
	Priority        int        `json:"priority"`
	IsManuallyMoved bool       `json:"is_manually_moved"`
	Department      Department `json:"department"`
}

// MachineSettings is the externally supplied per-resource configuration row.
type MachineSettings struct {
	Machine            string    `json:"machine"               db:"machine"`
	WorkingHoursPerDay float64   `json:"working_hours_per_day" db:"working_hours_per_day"`
	UpdatedAt          time.Time `json:"updated_at"            db:"updated_at"`
}

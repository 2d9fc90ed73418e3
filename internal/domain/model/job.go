// Package model defines the core data types shared across the schedsync service.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Department groups machines into a manufacturing category.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type Department string

const (
	// DepartmentMilling covers the milling machine group.
	DepartmentMilling Department = "milling"
	// DepartmentTurning covers the turning machine group.
	DepartmentTurning Department = "turning"
	// DepartmentSlidingHead covers the sliding-head lathe group.
	DepartmentSlidingHead Department = "sliding_head"
	// DepartmentMisc covers machines outside the main groups.
	DepartmentMisc Department = "misc"
)

// JobStatusScheduled is the default status assigned to newly ingested jobs.
const JobStatusScheduled = "scheduled"

// Valid returns true if the Department is one of the known categories.
func (d Department) Valid() bool {
	return d == DepartmentMilling || d == DepartmentTurning ||
		d == DepartmentSlidingHead || d == DepartmentMisc
}

// UnmarshalText implements encoding.TextUnmarshaler for Department to allow env and JSON parsing.
func (d *Department) UnmarshalText(text []byte) error {
	v := Department(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("invalid department: %q", string(text))
	}
	*d = v
	return nil
}

// Departments returns all known departments in a stable order.
func Departments() []Department {
	return []Department{DepartmentMilling, DepartmentTurning, DepartmentSlidingHead, DepartmentMisc}
}

// Job is one scheduled unit of work on one machine. The natural identity key
// is (process_order, department); id is a surrogate used for history references.
type Job struct {
	ID                    string     `json:"id"                       db:"id"`
	ProcessOrder          string     `json:"process_order"            db:"process_order"`
	ProductionOrder       string     `json:"production_order"         db:"production_order"`
	Machine               string     `json:"machine"                  db:"machine"`
	OriginalMachine       string     `json:"original_machine"         db:"original_machine"`
	Department            Department `json:"department"               db:"department"`
	EndProduct            string     `json:"end_product"              db:"end_product"`
	ItemName              string     `json:"item_name"                db:"item_name"`
	Customer              string     `json:"customer"                 db:"customer"`
	StartTime             time.Time  `json:"start_time"               db:"start_time"`
	DurationHours         float64    `json:"duration_hours"           db:"duration_hours"`
	OriginalDurationHours float64    `json:"original_duration_hours"  db:"original_duration_hours"`
	Qty                   int        `json:"qty"                      db:"qty"`
	Priority              int        `json:"priority"                 db:"priority"`
	Status                string     `json:"status"                   db:"status"`
	Comments              string     `json:"comments"                 db:"comments"`
	IsManuallyMoved       bool       `json:"is_manually_moved"        db:"is_manually_moved"`
	MovedBy               *string    `json:"moved_by,omitempty"       db:"moved_by"`
	MovedAt               *time.Time `json:"moved_at,omitempty"       db:"moved_at"`
	UploadedBy            string     `json:"uploaded_by"              db:"uploaded_by"`
	UploadedAt            time.Time  `json:"uploaded_at"              db:"uploaded_at"`
	CreatedAt             time.Time  `json:"created_at"               db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"               db:"updated_at"`
}

// EndTime returns the scheduled completion time of the job.
func (j *Job) EndTime() time.Time {
	return j.StartTime.Add(time.Duration(j.DurationHours * float64(time.Hour)))
}

// Key returns the natural identity key of the job within its department.
func (j *Job) Key() string { return j.ProcessOrder }

// UploadedJob is one normalized row produced by the external schedule parser.
// It is validated at the ingestion boundary before it reaches the merge engine.
type UploadedJob struct {
	ProcessOrder    string    `json:"process_order"`
	ProductionOrder string    `json:"production_order"`
	Machine         string    `json:"machine"`
	EndProduct      string    `json:"end_product"`
	ItemName        string    `json:"item_name"`
	Customer        string    `json:"customer"`
	StartTime       time.Time `json:"start_time"`
	DurationHours   float64   `json:"duration_hours"`
	Qty             int       `json:"qty"`
	Priority        int       `json:"priority"`
	Status          string    `json:"status,omitempty"`
	Comments        string    `json:"comments,omitempty"`
}

// Validate rejects malformed rows before they reach the merge engine.
func (u *UploadedJob) Validate() error {
	if strings.TrimSpace(u.ProcessOrder) == "" {
		return errors.New("process_order is required")
	}
	if strings.TrimSpace(u.Machine) == "" {
		return errors.New("machine is required")
	}
	if u.StartTime.IsZero() {
		return errors.New("start_time is required")
	}
	if u.DurationHours < 0 {
		return errors.New("duration_hours must be >= 0")
	}
	if u.Qty < 0 {
		return errors.New("qty must be >= 0")
	}
	return nil
}

// MergeRequest carries one department upload into the merge engine.
type MergeRequest struct {
	Department  Department    `json:"department"`
	Jobs        []UploadedJob `json:"jobs"`
	ActorID     string        `json:"actor_id"`
	SourceLabel string        `json:"source_label,omitempty"`
}

// Validate validates the MergeRequest and every uploaded row.
func (r *MergeRequest) Validate() error {
	if !r.Department.Valid() {
		return fmt.Errorf("invalid department: %q", r.Department)
	}
	if strings.TrimSpace(r.ActorID) == "" {
		return errors.New("actor_id is required")
	}
	for i := range r.Jobs {
		if err := r.Jobs[i].Validate(); err != nil {
			return fmt.Errorf("job %d: %w", i, err)
		}
	}
	return nil
}

// MergeResult reports the outcome of one reconciliation call.
type MergeResult struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Preserved int `json:"preserved"`
	Skipped   int `json:"skipped"`
}

// MoveJobRequest carries a human-directed reassignment of one job.
type MoveJobRequest struct {
	ProcessOrder     string     `json:"process_order"`
	Department       Department `json:"department"`
	ToMachine        string     `json:"to_machine"`
	NewDurationHours float64    `json:"new_duration_hours"`
	NewStartTime     *time.Time `json:"new_start_time,omitempty"`
	NewPriority      *int       `json:"new_priority,omitempty"`
	ActorID          string     `json:"actor_id"`
	Reason           string     `json:"reason,omitempty"`
}

// Validate validates the MoveJobRequest fields.
func (r *MoveJobRequest) Validate() error {
	if strings.TrimSpace(r.ProcessOrder) == "" {
		return errors.New("process_order is required")
	}
	if !r.Department.Valid() {
		return fmt.Errorf("invalid department: %q", r.Department)
	}
	if strings.TrimSpace(r.ToMachine) == "" {
		return errors.New("to_machine is required")
	}
	if r.NewDurationHours < 0 {
		return errors.New("new_duration_hours must be >= 0")
	}
	if strings.TrimSpace(r.ActorID) == "" {
		return errors.New("actor_id is required")
	}
	return nil
}

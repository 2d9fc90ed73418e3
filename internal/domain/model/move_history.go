package model

import "time"

// MoveHistoryEntry is an immutable audit record of one manual override.
// Entries are only ever inserted; they are never mutated or deleted.
type MoveHistoryEntry struct {
	ID               string     `json:"id"                 db:"id"`
	JobID            string     `json:"job_id"             db:"job_id"`
	ProcessOrder     string     `json:"process_order"      db:"process_order"`
	Department       Department `json:"department"         db:"department"`
	FromMachine      string     `json:"from_machine"       db:"from_machine"`
	ToMachine        string     `json:"to_machine"         db:"to_machine"`
	OldDurationHours float64    `json:"old_duration_hours" db:"old_duration_hours"`
	NewDurationHours float64    `json:"new_duration_hours" db:"new_duration_hours"`
	OldStartTime     time.Time  `json:"old_start_time"     db:"old_start_time"`
	NewStartTime     time.Time  `json:"new_start_time"     db:"new_start_time"`
	MovedBy          string     `json:"moved_by"           db:"moved_by"`
	Reason           *string    `json:"reason,omitempty"   db:"reason"`
	CreatedAt        time.Time  `json:"created_at"         db:"created_at"`
}

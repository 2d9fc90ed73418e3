// Package core defines the repository port interfaces between the service
// layer and the data layer. Services depend on these contracts, not on
// concrete implementations.
package core

import (
	"context"
	"time"

	"github.com/millbrook-mfg/schedsync/internal/domain/model"
)

// ListJobsPage groups pagination parameters for JobRepository.ListByDepartment.
type ListJobsPage struct {
	Limit  int
	Offset int
}

// InsertJobsParams groups parameters for JobRepository.InsertBatch.
type InsertJobsParams struct {
	Department  model.Department
	Jobs        []model.UploadedJob
	UploadedBy  string
	SourceLabel string
}

// JobMoveUpdate carries the mutable fields written by a manual override.
type JobMoveUpdate struct {
	Machine       string
	DurationHours float64
	StartTime     *time.Time
	Priority      *int
	MovedBy       string
	MovedAt       time.Time
}

// JobRepository defines the interface for job row operations. The natural key
// for every targeted operation is (process_order, department).
type JobRepository interface {
	GetByKey(ctx context.Context, dept model.Department, processOrder string) (*model.Job, error)
	// ListByDepartment returns one page of a department's jobs ordered by
	// process_order; a short page signals exhaustion.
	ListByDepartment(ctx context.Context, dept model.Department, page ListJobsPage) ([]model.Job, error)
	// InsertBatch inserts rows with insert-or-ignore semantics on
	// (process_order, department) and returns the number actually inserted.
	InsertBatch(ctx context.Context, params InsertJobsParams) (int, error)
	// DeleteBatch deletes the given process orders within a department and
	// returns the number of rows removed. Deleting an absent key is a no-op.
	DeleteBatch(ctx context.Context, dept model.Department, processOrders []string) (int, error)
	// ApplyMove updates the job's assignment fields and marks it manually moved.
	ApplyMove(ctx context.Context, dept model.Department, processOrder string, upd JobMoveUpdate) (*model.Job, error)
	ClearDepartment(ctx context.Context, dept model.Department) (int, error)
	ClearAll(ctx context.Context) (int, error)
}

// CreateMoveHistoryParams groups parameters for MoveHistoryRepository.Create.
type CreateMoveHistoryParams struct {
	Job              *model.Job
	ToMachine        string
	NewDurationHours float64
	NewStartTime     time.Time
	MovedBy          string
	Reason           string
}

// MoveHistoryRepository defines the interface for the append-only move audit log.
type MoveHistoryRepository interface {
	Create(ctx context.Context, params CreateMoveHistoryParams) (*model.MoveHistoryEntry, error)
	ListByJob(ctx context.Context, dept model.Department, processOrder string) ([]model.MoveHistoryEntry, error)
}

// MachineSettingsRepository defines the interface for per-machine resource settings.
type MachineSettingsRepository interface {
	GetByMachines(ctx context.Context, machines []string) ([]model.MachineSettings, error)
	Upsert(ctx context.Context, machine string, workingHoursPerDay float64) (*model.MachineSettings, error)
}

// SettingsCache defines the byte-level cache used for machine settings lookups.
type SettingsCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
}

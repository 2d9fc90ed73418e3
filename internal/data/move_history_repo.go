package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/millbrook-mfg/schedsync/internal/core"
	"github.com/millbrook-mfg/schedsync/internal/data/pgxutil"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
)

// MoveHistoryRepo provides database operations for the append-only move audit
// log. Entries are inserted once and never updated or deleted.
type MoveHistoryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewMoveHistoryRepo creates a new MoveHistoryRepo with real time provider.
func NewMoveHistoryRepo(db *sql.DB) *MoveHistoryRepo {
	return &MoveHistoryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewMoveHistoryRepoWithTimeProvider creates a new MoveHistoryRepo with a custom time provider.
func NewMoveHistoryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *MoveHistoryRepo {
	return &MoveHistoryRepo{DB: db, timeProvider: tp}
}

const moveHistoryColumns = `
	id, job_id, process_order, department, from_machine, to_machine,
	old_duration_hours, new_duration_hours, old_start_time, new_start_time,
	moved_by, reason, created_at`

// Create appends one audit entry capturing the prior and new assignment.
func (r *MoveHistoryRepo) Create(ctx context.Context, params core.CreateMoveHistoryParams) (*model.MoveHistoryEntry, error) {
	job := params.Job
	if job == nil {
		return nil, fmt.Errorf("move history: job is required")
	}

	var reason *string
	if trimmed := strings.TrimSpace(params.Reason); trimmed != "" {
		reason = &trimmed
	}

	var out model.MoveHistoryEntry
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO move_history (
				id, job_id, process_order, department, from_machine, to_machine,
				old_duration_hours, new_duration_hours, old_start_time, new_start_time,
				moved_by, reason, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
			) RETURNING`+moveHistoryColumns,
			uuid.NewString(),
			job.ID,
			job.ProcessOrder,
			job.Department,
			job.Machine,
			params.ToMachine,
			job.DurationHours,
			params.NewDurationHours,
			job.StartTime.UTC(),
			params.NewStartTime.UTC(),
			params.MovedBy,
			reason,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.MoveHistoryEntry])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create move history entry: %w", err)
	}
	return &out, nil
}

// ListByJob returns a job's audit trail, most recent first.
func (r *MoveHistoryRepo) ListByJob(ctx context.Context, dept model.Department, processOrder string) ([]model.MoveHistoryEntry, error) {
	if strings.TrimSpace(processOrder) == "" {
		return nil, ErrProcessOrderRequired
	}

	var out []model.MoveHistoryEntry
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT`+moveHistoryColumns+`
			FROM move_history
			WHERE department = $1 AND process_order = $2
			ORDER BY created_at DESC`,
			dept, processOrder)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.MoveHistoryEntry])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list move history: %w", err)
	}
	return out, nil
}

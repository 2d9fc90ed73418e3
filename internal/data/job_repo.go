// Package data provides the database access layer for the schedsync service.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/millbrook-mfg/schedsync/internal/core"
	"github.com/millbrook-mfg/schedsync/internal/data/pgxutil"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
)

// JobRepo provides database operations for scheduled job rows. The natural
// key for targeted operations is (process_order, department).
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobRepo creates a new JobRepo with real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a new JobRepo with a custom time provider (useful for tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	jobSelectColumns = `
		id, process_order, production_order, machine, original_machine, department,
		end_product, item_name, customer, start_time, duration_hours,
		original_duration_hours, qty, priority, status, comments,
		is_manually_moved, moved_by, moved_at, uploaded_by, uploaded_at,
		created_at, updated_at`

	jobGetByKeyQuery = `
		SELECT` + jobSelectColumns + `
		FROM jobs
		WHERE department = $1 AND process_order = $2`

	jobListByDepartmentQuery = `
		SELECT` + jobSelectColumns + `
		FROM jobs
		WHERE department = $1
		ORDER BY process_order
		LIMIT $2 OFFSET $3`

	jobInsertQuery = `
		INSERT INTO jobs (
			id, process_order, production_order, machine, original_machine, department,
			end_product, item_name, customer, start_time, duration_hours,
			original_duration_hours, qty, priority, status, comments,
			uploaded_by, uploaded_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
		ON CONFLICT (process_order, department) DO NOTHING`
)

// GetByKey retrieves one job by its natural key.
func (r *JobRepo) GetByKey(ctx context.Context, dept model.Department, processOrder string) (*model.Job, error) {
	if strings.TrimSpace(processOrder) == "" {
		return nil, ErrProcessOrderRequired
	}

	var job model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobGetByKeyQuery, dept, processOrder)
		if err != nil {
			return err
		}
		defer rows.Close()
		job, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by key: %w", err)
	}
	return &job, nil
}

// ListByDepartment retrieves one page of a department's jobs ordered by
// process_order. Callers paginate until a short page signals exhaustion.
func (r *JobRepo) ListByDepartment(ctx context.Context, dept model.Department, page core.ListJobsPage) ([]model.Job, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = 1000
	}
	offset := max(page.Offset, 0)

	var out []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobListByDepartmentQuery, dept, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list jobs for department %s: %w", dept, err)
	}
	return out, nil
}

// InsertBatch inserts uploaded rows with insert-or-ignore semantics keyed on
// (process_order, department), so a race with a concurrent add cannot
// duplicate a row. The whole batch commits or rolls back as a unit; the
// returned count is the number of rows actually inserted.
func (r *JobRepo) InsertBatch(ctx context.Context, params core.InsertJobsParams) (int, error) {
	if len(params.Jobs) == 0 {
		return 0, nil
	}

	now := r.timeProvider.Now().UTC()
	inserted := 0
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
		Fn: func(tx pgx.Tx) error {
			batch := &pgx.Batch{}
			for i := range params.Jobs {
				u := &params.Jobs[i]
				status := u.Status
				if status == "" {
					status = model.JobStatusScheduled
				}
				batch.Queue(jobInsertQuery,
					uuid.NewString(),
					u.ProcessOrder,
					u.ProductionOrder,
					u.Machine,
					u.Machine, // original assignment at first ingest
					params.Department,
					u.EndProduct,
					u.ItemName,
					u.Customer,
					u.StartTime.UTC(),
					u.DurationHours,
					u.DurationHours,
					u.Qty,
					u.Priority,
					status,
					u.Comments,
					params.UploadedBy,
					now,
				)
			}

			br := tx.SendBatch(ctx, batch)
			for i := range params.Jobs {
				ct, execErr := br.Exec()
				if execErr != nil {
					closeErr := br.Close()
					return errors.Join(fmt.Errorf("insert job %d: %w", i, execErr), closeErr)
				}
				inserted += int(ct.RowsAffected())
			}
			return br.Close()
		},
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// DeleteBatch deletes the given process orders within a department in one
// statement. Deleting an already-absent key is a no-op.
func (r *JobRepo) DeleteBatch(ctx context.Context, dept model.Department, processOrders []string) (int, error) {
	if len(processOrders) == 0 {
		return 0, nil
	}

	var removed int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, execErr := conn.Exec(ctx,
			`DELETE FROM jobs WHERE department = $1 AND process_order = ANY($2)`,
			dept, processOrders)
		if execErr != nil {
			return execErr
		}
		removed = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete jobs: %w", err)
	}
	return int(removed), nil
}

// ApplyMove updates a job's assignment fields and marks it protected from
// automatic removal. There is no version guard; last write wins under
// concurrent calls on the same key.
func (r *JobRepo) ApplyMove(
	ctx context.Context,
	dept model.Department,
	processOrder string,
	upd core.JobMoveUpdate,
) (*model.Job, error) {
	if strings.TrimSpace(processOrder) == "" {
		return nil, ErrProcessOrderRequired
	}

	setClause, args := buildMoveClause(upd)
	args = append(args, dept, processOrder)
	query := "UPDATE jobs SET " + setClause +
		" WHERE department = $" + strconv.Itoa(len(args)-1) +
		" AND process_order = $" + strconv.Itoa(len(args)) +
		" RETURNING" + jobSelectColumns

	var job model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		job, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}
	return &job, nil
}

// buildMoveClause builds the SQL SET clause and args for a manual move.
func buildMoveClause(upd core.JobMoveUpdate) (string, []any) {
	setParts := make([]string, 0, 8)
	args := make([]any, 0, 8)
	nextIdx := func() int { return len(args) + 1 }

	setParts = append(setParts, fmt.Sprintf("machine = $%d", nextIdx()))
	args = append(args, upd.Machine)
	setParts = append(setParts, fmt.Sprintf("duration_hours = $%d", nextIdx()))
	args = append(args, upd.DurationHours)
	if upd.StartTime != nil {
		setParts = append(setParts, fmt.Sprintf("start_time = $%d", nextIdx()))
		args = append(args, upd.StartTime.UTC())
	}
	if upd.Priority != nil {
		setParts = append(setParts, fmt.Sprintf("priority = $%d", nextIdx()))
		args = append(args, *upd.Priority)
	}
	setParts = append(setParts, "is_manually_moved = TRUE")
	setParts = append(setParts, fmt.Sprintf("moved_by = $%d", nextIdx()))
	args = append(args, upd.MovedBy)
	setParts = append(setParts, fmt.Sprintf("moved_at = $%d", nextIdx()))
	args = append(args, upd.MovedAt.UTC())
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, upd.MovedAt.UTC())

	return strings.Join(setParts, ", "), args
}

// ClearDepartment deletes every job row in one department.
func (r *JobRepo) ClearDepartment(ctx context.Context, dept model.Department) (int, error) {
	var removed int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, execErr := conn.Exec(ctx, `DELETE FROM jobs WHERE department = $1`, dept)
		if execErr != nil {
			return execErr
		}
		removed = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to clear department %s: %w", dept, err)
	}
	return int(removed), nil
}

// ClearAll deletes every job row across all departments.
func (r *JobRepo) ClearAll(ctx context.Context) (int, error) {
	var removed int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, execErr := conn.Exec(ctx, `DELETE FROM jobs`)
		if execErr != nil {
			return execErr
		}
		removed = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to clear jobs: %w", err)
	}
	return int(removed), nil
}

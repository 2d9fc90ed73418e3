package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/millbrook-mfg/schedsync/internal/data/pgxutil"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
)

// MachineSettingsRepo provides database operations for per-machine resource
// settings supplied by the resource-configuration collaborator.
type MachineSettingsRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewMachineSettingsRepo creates a new MachineSettingsRepo with real time provider.
func NewMachineSettingsRepo(db *sql.DB) *MachineSettingsRepo {
	return &MachineSettingsRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewMachineSettingsRepoWithTimeProvider creates a new MachineSettingsRepo with a custom time provider.
func NewMachineSettingsRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *MachineSettingsRepo {
	return &MachineSettingsRepo{DB: db, timeProvider: tp}
}

// GetByMachines returns settings rows for the given machines. Machines with
// no stored setting are simply absent from the result.
func (r *MachineSettingsRepo) GetByMachines(ctx context.Context, machines []string) ([]model.MachineSettings, error) {
	if len(machines) == 0 {
		return []model.MachineSettings{}, nil
	}

	var out []model.MachineSettings
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT machine, working_hours_per_day, updated_at
			FROM machine_settings
			WHERE machine = ANY($1)`,
			machines)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.MachineSettings])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to get machine settings: %w", err)
	}
	return out, nil
}

// Upsert writes one machine's working-hours setting.
func (r *MachineSettingsRepo) Upsert(ctx context.Context, machine string, workingHoursPerDay float64) (*model.MachineSettings, error) {
	machine = strings.TrimSpace(machine)
	if machine == "" {
		return nil, ErrMachineRequired
	}
	if workingHoursPerDay <= 0 || workingHoursPerDay > 24 {
		return nil, fmt.Errorf("working_hours_per_day must be in (0, 24]")
	}

	var out model.MachineSettings
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO machine_settings (machine, working_hours_per_day, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (machine) DO UPDATE
			SET working_hours_per_day = EXCLUDED.working_hours_per_day,
			    updated_at = EXCLUDED.updated_at
			RETURNING machine, working_hours_per_day, updated_at`,
			machine, workingHoursPerDay, r.timeProvider.Now().UTC())
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.MachineSettings])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert machine settings: %w", err)
	}
	return &out, nil
}

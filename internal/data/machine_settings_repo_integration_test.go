package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millbrook-mfg/schedsync/internal/testutil"
)

func TestMachineSettingsRepo_Upsert_And_GetByMachines(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewMachineSettingsRepoWithTimeProvider(db, NewFixedTimeProvider(testutil.TestTime()))

		created, err := repo.Upsert(ctx, "M1", 8)
		require.NoError(t, err)
		assert.Equal(t, "M1", created.Machine)
		assert.Equal(t, 8.0, created.WorkingHoursPerDay)

		// Upsert on the same machine replaces the value.
		updated, err := repo.Upsert(ctx, "M1", 16)
		require.NoError(t, err)
		assert.Equal(t, 16.0, updated.WorkingHoursPerDay)

		_, err = repo.Upsert(ctx, "M2", 12)
		require.NoError(t, err)

		rows, err := repo.GetByMachines(ctx, []string{"M1", "M2", "M99"})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		byMachine := make(map[string]float64, len(rows))
		for _, row := range rows {
			byMachine[row.Machine] = row.WorkingHoursPerDay
		}
		assert.Equal(t, 16.0, byMachine["M1"])
		assert.Equal(t, 12.0, byMachine["M2"])
	})
}

func TestMachineSettingsRepo_Upsert_Validation(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewMachineSettingsRepo(db)

		_, err := repo.Upsert(ctx, "  ", 8)
		assert.ErrorIs(t, err, ErrMachineRequired)

		_, err = repo.Upsert(ctx, "M1", 0)
		require.Error(t, err)

		_, err = repo.Upsert(ctx, "M1", 25)
		require.Error(t, err)
	})
}

func TestMachineSettingsRepo_GetByMachines_EmptyInput(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewMachineSettingsRepo(db)

		rows, err := repo.GetByMachines(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

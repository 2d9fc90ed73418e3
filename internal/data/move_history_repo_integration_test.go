package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millbrook-mfg/schedsync/internal/core"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
	"github.com/millbrook-mfg/schedsync/internal/testutil"
)

func TestMoveHistoryRepo_Create_And_ListByJob(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		jobRepo := NewJobRepo(db)
		clock := NewFixedTimeProvider(testutil.TestTime())
		repo := NewMoveHistoryRepoWithTimeProvider(db, clock)

		insertTestJobs(t, jobRepo, model.DepartmentMilling,
			testutil.NewUploadedJob("PO100").WithMachine("M1").WithDuration(4).Build())
		job, err := jobRepo.GetByKey(ctx, model.DepartmentMilling, "PO100")
		require.NoError(t, err)

		newStart := testutil.TestTime().Add(24 * time.Hour)
		entry, err := repo.Create(ctx, core.CreateMoveHistoryParams{
			Job:              job,
			ToMachine:        "M2",
			NewDurationHours: 6,
			NewStartTime:     newStart,
			MovedBy:          "supervisor-1",
			Reason:           "  M1 spindle down  ",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, job.ID, entry.JobID)
		assert.Equal(t, "PO100", entry.ProcessOrder)
		assert.Equal(t, model.DepartmentMilling, entry.Department)
		assert.Equal(t, "M1", entry.FromMachine)
		assert.Equal(t, "M2", entry.ToMachine)
		assert.Equal(t, 4.0, entry.OldDurationHours)
		assert.Equal(t, 6.0, entry.NewDurationHours)
		require.NotNil(t, entry.Reason)
		assert.Equal(t, "M1 spindle down", *entry.Reason)

		// Second move, later in time.
		clock.AddTime(time.Minute)
		_, err = repo.Create(ctx, core.CreateMoveHistoryParams{
			Job:              job,
			ToMachine:        "M3",
			NewDurationHours: 6,
			NewStartTime:     newStart,
			MovedBy:          "supervisor-2",
		})
		require.NoError(t, err)

		trail, err := repo.ListByJob(ctx, model.DepartmentMilling, "PO100")
		require.NoError(t, err)
		require.Len(t, trail, 2)

		// Most recent first, and a blank reason is stored as NULL.
		assert.Equal(t, "M3", trail[0].ToMachine)
		assert.Nil(t, trail[0].Reason)
		assert.Equal(t, "M2", trail[1].ToMachine)
	})
}

func TestMoveHistoryRepo_Create_RequiresJob(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewMoveHistoryRepo(db)

		_, err := repo.Create(context.Background(), core.CreateMoveHistoryParams{
			ToMachine: "M2",
			MovedBy:   "supervisor-1",
		})
		require.Error(t, err)
	})
}

func TestMoveHistoryRepo_ListByJob_Empty(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewMoveHistoryRepo(db)

		trail, err := repo.ListByJob(context.Background(), model.DepartmentMilling, "PO404")
		require.NoError(t, err)
		assert.Empty(t, trail)

		_, err = repo.ListByJob(context.Background(), model.DepartmentMilling, "")
		assert.ErrorIs(t, err, ErrProcessOrderRequired)
	})
}

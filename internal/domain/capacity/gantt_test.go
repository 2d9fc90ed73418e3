package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millbrook-mfg/schedsync/internal/domain/model"
)

func TestBuildGanttJobs_Empty(t *testing.T) {
	t.Parallel()

	out := BuildGanttJobs(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestBuildGanttJobs_OrderedByMachineThenStart(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	jobs := []model.Job{
		job("PO3", "M2", base, 2),
		job("PO2", "M1", base.Add(4*time.Hour), 2),
		job("PO1", "M1", base, 2),
	}

	out := BuildGanttJobs(jobs)
	require.Len(t, out, 3)
	assert.Equal(t, "PO1", out[0].ProcessOrder)
	assert.Equal(t, "PO2", out[1].ProcessOrder)
	assert.Equal(t, "PO3", out[2].ProcessOrder)
	assert.Equal(t, base.Add(2*time.Hour), out[0].End)
}

func TestBuildGanttJobs_LabelFallback(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		mod  func(*model.Job)
		want string
	}{
		{
			name: "item name preferred",
			mod: func(j *model.Job) {
				j.ItemName = "bracket-v2"
				j.EndProduct = "assembly-9"
			},
			want: "bracket-v2",
		},
		{
			name: "end product next",
			mod:  func(j *model.Job) { j.EndProduct = "assembly-9" },
			want: "assembly-9",
		},
		{
			name: "process order last",
			mod:  func(*model.Job) {},
			want: "PO1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			j := job("PO1", "M1", base, 2)
			tt.mod(&j)

			out := BuildGanttJobs([]model.Job{j})
			require.Len(t, out, 1)
			assert.Equal(t, tt.want, out[0].Label)
		})
	}
}

func TestBuildGanttJobs_CarriesMoveFlag(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	j := job("PO1", "M1", base, 2)
	j.IsManuallyMoved = true
	j.Priority = 3

	out := BuildGanttJobs([]model.Job{j})
	require.Len(t, out, 1)
	assert.True(t, out[0].IsManuallyMoved)
	assert.Equal(t, 3, out[0].Priority)
	assert.Equal(t, model.DepartmentMilling, out[0].Department)
}

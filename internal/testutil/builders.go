package testutil

import (
	"strconv"
	"time"

	"github.com/millbrook-mfg/schedsync/internal/domain/model"
)

// UploadedJobBuilder provides a fluent interface for building UploadedJob rows for testing.
type UploadedJobBuilder struct {
	job model.UploadedJob
}

// NewUploadedJob creates a new UploadedJobBuilder with sensible defaults.
func NewUploadedJob(processOrder string) *UploadedJobBuilder {
	return &UploadedJobBuilder{
		job: model.UploadedJob{
			ProcessOrder:    processOrder,
			ProductionOrder: "PRD-" + processOrder,
			Machine:         "M1",
			EndProduct:      "assembly-1",
			ItemName:        "part-" + processOrder,
			Customer:        "acme",
			StartTime:       TestTime(),
			DurationHours:   4,
			Qty:             10,
		},
	}
}

// WithMachine sets the machine assignment.
func (b *UploadedJobBuilder) WithMachine(machine string) *UploadedJobBuilder {
	b.job.Machine = machine
	return b
}

// WithStartTime sets the scheduled start.
func (b *UploadedJobBuilder) WithStartTime(start time.Time) *UploadedJobBuilder {
	b.job.StartTime = start
	return b
}

// WithDuration sets the scheduled duration in hours.
func (b *UploadedJobBuilder) WithDuration(hours float64) *UploadedJobBuilder {
	b.job.DurationHours = hours
	return b
}

// WithQty sets the quantity.
func (b *UploadedJobBuilder) WithQty(qty int) *UploadedJobBuilder {
	b.job.Qty = qty
	return b
}

// WithPriority sets the priority.
func (b *UploadedJobBuilder) WithPriority(priority int) *UploadedJobBuilder {
	b.job.Priority = priority
	return b
}

// Build returns the constructed UploadedJob.
func (b *UploadedJobBuilder) Build() model.UploadedJob {
	return b.job
}

// UploadedJobs builds a list of uploaded rows with sequential process orders,
// all on the same machine starting an hour apart.
func UploadedJobs(prefix string, count int) []model.UploadedJob {
	jobs := make([]model.UploadedJob, 0, count)
	for i := 0; i < count; i++ {
		jobs = append(jobs, NewUploadedJob(prefix+strconv.Itoa(i)).
			WithStartTime(TestTime().Add(time.Duration(i)*time.Hour)).
			Build())
	}
	return jobs
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/millbrook-mfg/schedsync/internal/core"
	"github.com/millbrook-mfg/schedsync/internal/data"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
	apperrors "github.com/millbrook-mfg/schedsync/internal/errors"
)

// MoveServiceOptions groups dependencies for MoveService.
type MoveServiceOptions struct {
	Jobs         core.JobRepository
	History      core.MoveHistoryRepository
	TimeProvider data.TimeProvider
	Logger       *slog.Logger
}

// MoveService applies human-directed reassignments of single jobs. A moved
// job is marked manually moved, which protects it from automatic removal by
// later reconciliations until an explicit clear.
type MoveService struct {
	jobs    core.JobRepository
	history core.MoveHistoryRepository
	clock   data.TimeProvider
	logger  *slog.Logger
}

// NewMoveService constructs a new MoveService.
func NewMoveService(opts MoveServiceOptions) *MoveService {
	clock := opts.TimeProvider
	if clock == nil {
		clock = &data.RealTimeProvider{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MoveService{jobs: opts.Jobs, history: opts.History, clock: clock, logger: logger}
}

// MoveJob reassigns one job to a new machine, writing the audit entry before
// updating the row. The job write carries no version guard; last write wins
// under concurrent calls on the same key.
func (s *MoveService) MoveJob(ctx context.Context, req model.MoveJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid move request")
	}

	job, err := s.jobs.GetByKey(ctx, req.Department, req.ProcessOrder)
	if err != nil {
		if errors.Is(err, data.ErrJobNotFound) {
			return nil, apperrors.NotFoundf("job %s not found in department %s", req.ProcessOrder, req.Department)
		}
		return nil, err
	}

	newStart := job.StartTime
	if req.NewStartTime != nil {
		newStart = *req.NewStartTime
	}

	if _, err = s.history.Create(ctx, core.CreateMoveHistoryParams{
		Job:              job,
		ToMachine:        req.ToMachine,
		NewDurationHours: req.NewDurationHours,
		NewStartTime:     newStart,
		MovedBy:          req.ActorID,
		Reason:           req.Reason,
	}); err != nil {
		return nil, err
	}

	updated, err := s.jobs.ApplyMove(ctx, req.Department, req.ProcessOrder, core.JobMoveUpdate{
		Machine:       req.ToMachine,
		DurationHours: req.NewDurationHours,
		StartTime:     req.NewStartTime,
		Priority:      req.NewPriority,
		MovedBy:       req.ActorID,
		MovedAt:       s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, data.ErrJobNotFound) {
			return nil, apperrors.NotFoundf("job %s not found in department %s", req.ProcessOrder, req.Department)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "job moved",
		"department", req.Department,
		"process_order", req.ProcessOrder,
		"from_machine", job.Machine,
		"to_machine", req.ToMachine,
		"moved_by", req.ActorID,
	)
	return updated, nil
}

// History returns a job's move audit trail, most recent first.
func (s *MoveService) History(ctx context.Context, dept model.Department, processOrder string) ([]model.MoveHistoryEntry, error) {
	if !dept.Valid() {
		return nil, apperrors.Validationf("invalid department: %q", dept)
	}
	if processOrder == "" {
		return nil, apperrors.ValidationField("process_order", "process_order is required")
	}
	return s.history.ListByJob(ctx, dept, processOrder)
}

// Package service contains the business logic of the schedsync service.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/millbrook-mfg/schedsync/internal/core"
	"github.com/millbrook-mfg/schedsync/internal/domain/model"
	apperrors "github.com/millbrook-mfg/schedsync/internal/errors"
)

// MergeServiceOptions groups dependencies for MergeService.
type MergeServiceOptions struct {
	Jobs      core.JobRepository
	BatchSize int
	PageSize  int
	Logger    *slog.Logger
}

// MergeService reconciles an uploaded schedule against the persisted job set,
// one department per call. Concurrent reconciliations on the same department
// are serialized internally; callers do not need their own locking.
type MergeService struct {
	jobs      core.JobRepository
	batchSize int
	pageSize  int
	logger    *slog.Logger

	mu    sync.Mutex
	locks map[model.Department]*sync.Mutex
}

// NewMergeService constructs a new MergeService.
func NewMergeService(opts MergeServiceOptions) *MergeService {
	batchSize := opts.BatchSize
	if batchSize < 1 {
		batchSize = 500
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = 1000
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MergeService{
		jobs:      opts.Jobs,
		batchSize: batchSize,
		pageSize:  pageSize,
		logger:    logger,
		locks:     make(map[model.Department]*sync.Mutex),
	}
}

// deptLock returns the mutex serializing writes for one department.
func (s *MergeService) deptLock(dept model.Department) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[dept]
	if !ok {
		l = &sync.Mutex{}
		s.locks[dept] = l
	}
	return l
}

// MergeJobs reconciles one department's persisted job set with a freshly
// uploaded list:
//
//  1. Uploaded rows are deduplicated by process order, last occurrence wins.
//  2. Persisted rows absent from the upload are removed, unless manually
//     moved; manually moved rows are never touched by reconciliation.
//  3. Uploaded rows not yet persisted are added.
//  4. Uploaded rows whose key already exists are skipped; the existing row
//     keeps its stored values even if the upload differs.
//
// Removals run before additions, each in fixed-size sequential batches. A
// failed batch aborts the rest of its phase; the returned MergeResult carries
// the counts committed before the failure, and the error is an
// apperrors.BatchError identifying phase, batch index, and affected keys.
// Calling MergeJobs twice with the same input and no intervening mutation
// yields added=0, removed=0 on the second call.
func (s *MergeService) MergeJobs(ctx context.Context, req model.MergeRequest) (model.MergeResult, error) {
	var result model.MergeResult
	if err := req.Validate(); err != nil {
		return result, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid merge request")
	}

	lock := s.deptLock(req.Department)
	lock.Lock()
	defer lock.Unlock()

	deduped := dedupeLastWins(req.Jobs)

	persisted, err := fetchDepartmentJobs(ctx, s.jobs, req.Department, s.pageSize)
	if err != nil {
		return result, err
	}

	plan := partition(persisted, deduped)
	result.Preserved = plan.preserved
	result.Skipped = plan.skipped

	s.logger.InfoContext(ctx, "merge plan computed",
		"department", req.Department,
		"source", req.SourceLabel,
		"uploaded", len(req.Jobs),
		"deduped", len(deduped),
		"persisted", len(persisted),
		"to_remove", len(plan.toRemove),
		"to_add", len(plan.toAdd),
		"preserved", plan.preserved,
		"skipped", plan.skipped,
	)

	// Remove phase.
	for i, keys := range chunkStrings(plan.toRemove, s.batchSize) {
		removed, delErr := s.jobs.DeleteBatch(ctx, req.Department, keys)
		if delErr != nil {
			return result, apperrors.NewBatchError(apperrors.BatchPhaseRemove, i, keys, delErr)
		}
		result.Removed += removed
	}

	// Add phase. Insert-or-ignore on (process_order, department) keeps a race
	// with another writer from duplicating a row.
	for i, chunk := range chunkJobs(plan.toAdd, s.batchSize) {
		added, insErr := s.jobs.InsertBatch(ctx, core.InsertJobsParams{
			Department:  req.Department,
			Jobs:        chunk,
			UploadedBy:  req.ActorID,
			SourceLabel: req.SourceLabel,
		})
		if insErr != nil {
			// A failed add phase after a committed remove phase can leave the
			// department smaller than either the old or new set. Surface that
			// state distinctly rather than retrying.
			return result, apperrors.NewBatchError(apperrors.BatchPhaseAdd, i, uploadKeys(chunk), insErr)
		}
		result.Added += added
	}

	s.logger.InfoContext(ctx, "merge completed",
		"department", req.Department,
		"source", req.SourceLabel,
		"added", result.Added,
		"removed", result.Removed,
		"preserved", result.Preserved,
		"skipped", result.Skipped,
	)
	return result, nil
}

// ClearDepartment removes every job in one department, including manually
// moved ones. This is the explicit clear operation that ends a manual move's
// protection.
func (s *MergeService) ClearDepartment(ctx context.Context, dept model.Department) (int, error) {
	if !dept.Valid() {
		return 0, apperrors.Validationf("invalid department: %q", dept)
	}

	lock := s.deptLock(dept)
	lock.Lock()
	defer lock.Unlock()

	removed, err := s.jobs.ClearDepartment(ctx, dept)
	if err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "department cleared", "department", dept, "removed", removed)
	return removed, nil
}

// ClearAll removes every job across all departments.
func (s *MergeService) ClearAll(ctx context.Context) (int, error) {
	for _, dept := range model.Departments() {
		lock := s.deptLock(dept)
		lock.Lock()
		defer lock.Unlock()
	}

	removed, err := s.jobs.ClearAll(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "all jobs cleared", "removed", removed)
	return removed, nil
}

// mergePlan is the partition of persisted and uploaded rows for one call.
type mergePlan struct {
	toRemove  []string
	toAdd     []model.UploadedJob
	preserved int
	skipped   int
}

// dedupeLastWins collapses duplicate process orders, keeping the last
// occurrence of each (overlapping export ranges resend the same job).
func dedupeLastWins(jobs []model.UploadedJob) []model.UploadedJob {
	byKey := make(map[string]model.UploadedJob, len(jobs))
	order := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if _, seen := byKey[j.ProcessOrder]; !seen {
			order = append(order, j.ProcessOrder)
		}
		byKey[j.ProcessOrder] = j
	}

	out := make([]model.UploadedJob, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out
}

func partition(persisted []model.Job, deduped []model.UploadedJob) mergePlan {
	uploadedKeys := make(map[string]struct{}, len(deduped))
	for i := range deduped {
		uploadedKeys[deduped[i].ProcessOrder] = struct{}{}
	}
	persistedKeys := make(map[string]bool, len(persisted))

	var plan mergePlan
	for i := range persisted {
		p := &persisted[i]
		persistedKeys[p.ProcessOrder] = p.IsManuallyMoved
		_, inUpload := uploadedKeys[p.ProcessOrder]
		switch {
		case p.IsManuallyMoved:
			// Left completely untouched whether or not the upload resends the
			// key; an uploaded row for it is discarded, not merged field by
			// field.
			plan.preserved++
		case !inUpload:
			plan.toRemove = append(plan.toRemove, p.ProcessOrder)
		}
	}

	for i := range deduped {
		u := deduped[i]
		manuallyMoved, exists := persistedKeys[u.ProcessOrder]
		switch {
		case !exists:
			plan.toAdd = append(plan.toAdd, u)
		case !manuallyMoved:
			// Existing row is kept as stored, even when the upload carries
			// changed fields. Matches the observed upstream behavior.
			plan.skipped++
		}
	}
	return plan
}

// fetchDepartmentJobs reads a department's full persisted set in bounded
// sequential pages; a short page signals exhaustion.
func fetchDepartmentJobs(ctx context.Context, repo core.JobRepository, dept model.Department, pageSize int) ([]model.Job, error) {
	var all []model.Job
	for offset := 0; ; offset += pageSize {
		page, err := repo.ListByDepartment(ctx, dept, core.ListJobsPage{Limit: pageSize, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("fetch jobs for department %s: %w", dept, err)
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

func chunkStrings(items []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

func chunkJobs(items []model.UploadedJob, size int) [][]model.UploadedJob {
	var chunks [][]model.UploadedJob
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

func uploadKeys(jobs []model.UploadedJob) []string {
	keys := make([]string, len(jobs))
	for i := range jobs {
		keys[i] = jobs[i].ProcessOrder
	}
	return keys
}

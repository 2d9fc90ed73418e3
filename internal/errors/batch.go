package errors

import (
	"errors"
	"fmt"
	"strings"
)

// BatchPhase identifies which merge phase a failed batch belonged to.
type BatchPhase string

const (
	// BatchPhaseRemove is the deletion phase of a reconciliation call.
	BatchPhaseRemove BatchPhase = "remove"
	// BatchPhaseAdd is the insertion phase of a reconciliation call.
	BatchPhaseAdd BatchPhase = "add"
)

// BatchError reports a failed store batch during reconciliation. Batches
// already committed before the failure remain committed, so the error carries
// enough context (phase, batch index, affected keys) for manual reconciliation.
// It is never retried automatically.
type BatchError struct {
	Phase      BatchPhase
	BatchIndex int
	Keys       []string
	Err        error
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	keys := e.Keys
	suffix := ""
	if len(keys) > 5 {
		suffix = fmt.Sprintf(" (+%d more)", len(keys)-5)
		keys = keys[:5]
	}
	return fmt.Sprintf("%s batch %d failed for keys [%s]%s: %v",
		e.Phase, e.BatchIndex, strings.Join(keys, ", "), suffix, e.Err)
}

// Unwrap returns the underlying store error.
func (e *BatchError) Unwrap() error { return e.Err }

// NewBatchError constructs a BatchError for one failed batch.
func NewBatchError(phase BatchPhase, batchIndex int, keys []string, err error) *BatchError {
	return &BatchError{Phase: phase, BatchIndex: batchIndex, Keys: keys, Err: err}
}

// AsBatchError extracts a BatchError from an error chain, if present.
func AsBatchError(err error) (*BatchError, bool) {
	var be *BatchError
	ok := errors.As(err, &be)
	return be, ok
}

package httpx

import (
	"net/http"

	apperrors "github.com/millbrook-mfg/schedsync/internal/errors"
)

// batchErrorBody reports a failed reconciliation batch alongside the counts
// committed before the failure, so the caller can reconcile manually.
type batchErrorBody struct {
	Error      string   `json:"error"`
	Message    string   `json:"message"`
	Phase      string   `json:"phase"`
	BatchIndex int      `json:"batch_index"`
	Keys       []string `json:"keys"`
	Partial    any      `json:"partial_result,omitempty"`
}

// WriteServiceError maps a service error to an HTTP response. partial is
// included for batch failures (the MergeResult counts accumulated so far).
func WriteServiceError(w http.ResponseWriter, err error, partial any) {
	if be, ok := apperrors.AsBatchError(err); ok {
		WriteJSON(w, http.StatusInternalServerError, batchErrorBody{
			Error:      "batch_failed",
			Message:    be.Error(),
			Phase:      string(be.Phase),
			BatchIndex: be.BatchIndex,
			Keys:       be.Keys,
			Partial:    partial,
		})
		return
	}

	mapped := apperrors.MapDBError(err)
	code, status := errorStatus(mapped)
	WriteError(w, ErrorParams{Code: status, ErrCode: code, Err: mapped})
}

func errorStatus(err error) (string, int) {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		return "not_found", http.StatusNotFound
	case apperrors.ErrCodeValidation:
		return "validation", http.StatusBadRequest
	case apperrors.ErrCodeConflict:
		return "conflict", http.StatusConflict
	case apperrors.ErrCodeForeignKey:
		return "foreign_key", http.StatusConflict
	case apperrors.ErrCodeTimeout:
		return "timeout", http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled:
		return "canceled", 499
	case apperrors.ErrCodeInternal:
		return "internal", http.StatusInternalServerError
	default:
		return "internal", http.StatusInternalServerError
	}
}

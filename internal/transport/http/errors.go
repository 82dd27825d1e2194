package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
)

const (
	codeMethodNotAllowed    = "method_not_allowed"
	codeNotFound            = "not_found"
	codeInvalidRequestBody  = "invalid_request_body"
	codeInvalidID           = "invalid_id"
	codeConstraintViolation = "constraint_violation"
	codeCascadeFailure      = "cascade_failure"
	codeStorageUnavailable  = "storage_unavailable"
	codeForbidden           = "forbidden"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps a service error onto a status and code by its kind.
func writeDomainError(w http.ResponseWriter, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case domain.KindConstraintViolation:
		writeError(w, http.StatusConflict, codeConstraintViolation, err.Error())
	case domain.KindCascadeFailure:
		writeError(w, http.StatusInternalServerError, codeCascadeFailure, domain.ErrCascadeFailed.Error())
	case domain.KindConnectionFailure:
		if errors.Is(err, domain.ErrStorageUnavailable) {
			writeError(w, http.StatusServiceUnavailable, codeStorageUnavailable, domain.ErrStorageUnavailable.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload, err := json.Marshal(v)
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return false
	}
	return true
}

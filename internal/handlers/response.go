package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"delivery-system/internal/domain"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem renders errors in a simplified RFC7807 shape.
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// writeError maps the domain error taxonomy onto HTTP. Anything outside
// the taxonomy is an internal failure and the raw error never reaches
// the client.
func writeError(w http.ResponseWriter, err error) {
	var (
		notFound   *domain.NotFoundError
		validation *domain.ValidationError
		conflict   *domain.ConflictError
	)
	switch {
	case errors.As(err, &notFound):
		writeProblem(w, http.StatusNotFound, "not_found", notFound.Error())
	case errors.As(err, &validation):
		writeProblem(w, http.StatusUnprocessableEntity, "validation_error", validation.Error())
	case errors.As(err, &conflict):
		writeProblem(w, http.StatusConflict, "conflict", conflict.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func pathID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(key, "must be a positive integer")
	}
	return id, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return false
	}
	return true
}

package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	// maxBodyBytes caps request bodies; resumes are plain text.
	maxBodyBytes = 1 << 20
)

// decodeJSON reads the request body into v, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// jobID parses the {id} path value.
func jobID(r *http.Request) (uuid.UUID, error) {
	idStr := r.PathValue("id")
	if idStr == "" {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "job ID is required"}
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid job ID format"}
	}
	return id, nil
}

// listLimit parses ?limit=, clamping it to [1, maxListLimit].
func listLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, &ErrValidation{Field: "limit", Message: "must be a positive integer"}
	}
	return min(limit, maxListLimit), nil
}

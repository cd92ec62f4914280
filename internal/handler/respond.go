package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mmynk/hoard/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}

// pathID parses the named path segment as an integer identity.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, raw)
	}
	return id, nil
}

func logStoreError(r *http.Request, err error) {
	slog.Error("Storage operation failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
}

// writeServiceError maps a service error to its status code. Storage faults
// are logged and their text is not sent to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusUnprocessableEntity, ve.Error())
	case errors.Is(err, service.ErrConflictingIdentity):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logStoreError(r, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func outcomeStatus(o service.Outcome) int {
	if o == service.Created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// internal/handler/respond.go
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/spocklabs/spock-admin/internal/apperrors"
)

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to encode response:", err)
	}
}

// writeError maps domain errors onto the wire contract: validation
// failures carry a per-field message map, not-found and conflict errors
// carry the {message, error} envelope, and anything else is a 500 with
// fallbackMessage. The underlying cause of a 500 is logged, never returned
// beyond its string form.
func writeError(w http.ResponseWriter, err error, fallbackMessage string) {
	var (
		validationErr *apperrors.ValidationError
		malformedErr  *apperrors.MalformedError
		notFoundErr   *apperrors.NotFoundError
		conflictErr   *apperrors.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": validationErr.Fields})
	case errors.As(err, &malformedErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": []string{malformedErr.Error()}})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, errorBody{Message: notFoundErr.Message, Error: notFoundErr.Kind})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: conflictErr.Message, Error: conflictErr.Kind})
	default:
		log.Printf("❌ %s: %v", fallbackMessage, err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: fallbackMessage, Error: err.Error()})
	}
}

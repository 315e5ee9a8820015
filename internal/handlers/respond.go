package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/venturebridge/backend/pkg/apperrors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidTransition):
		http.Error(w, "Request already responded to", http.StatusConflict)
	case errors.Is(err, apperrors.ErrTransport), errors.Is(err, apperrors.ErrPersistence):
		http.Error(w, "Record store unavailable", http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"back_qr/internal/apperrors"
)

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: failed to encode response: %v", err)
	}
}

// writeErrorMessage writes an {error: message} body with the given status
func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"error": message})
}

// writeError translates a service error into the matching HTTP status.
// Anything outside the known taxonomy is logged and surfaced as a
// generic 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
		decodeErr     *apperrors.DecodeError
		encodeErr     *apperrors.EncodeError
		storageErr    *apperrors.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		writeErrorMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &decodeErr):
		writeErrorMessage(w, http.StatusBadRequest, decodeErr.Message)
	case errors.As(err, &encodeErr):
		writeErrorMessage(w, http.StatusBadRequest, encodeErr.Error())
	case errors.As(err, &notFoundErr):
		writeErrorMessage(w, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &storageErr):
		log.Printf("ERROR: storage failure: %v", err)
		writeErrorMessage(w, http.StatusInternalServerError, storageErr.Message)
	default:
		log.Printf("ERROR: unexpected error: %v", err)
		writeErrorMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

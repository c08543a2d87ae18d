package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"cloudstream_server/models"
	"cloudstream_server/services"
	"cloudstream_server/utils"
)

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors to HTTP status codes. Store and decode
// failures stay generic 500s; client mistakes get client codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, utils.ErrUnauthorized):
		http.Error(w, "Unauthorized", http.StatusForbidden)
	case errors.Is(err, services.ErrInvalidLogin):
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, services.ErrUserExists):
		http.Error(w, "User already exists", http.StatusConflict)
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrVideoNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrSelfSubscription), errors.Is(err, services.ErrInvalidAction):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrMalformedItem):
		log.Printf("❌ Decode failure: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	default:
		log.Printf("❌ Request failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

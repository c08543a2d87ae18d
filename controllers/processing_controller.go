package controllers

import (
	"encoding/json"
	"net/http"

	"cloudstream_server/services"
)

// ProcessingController receives storage upload notifications and runs the
// raw -> processed promotion. The endpoint is meant for the bucket event
// forwarder, not end users; it is authenticated by a shared callback token.
type ProcessingController struct {
	Processing    *services.ProcessingService
	CallbackToken string
}

// NewProcessingController creates a new ProcessingController instance
func NewProcessingController(processing *services.ProcessingService, callbackToken string) *ProcessingController {
	return &ProcessingController{Processing: processing, CallbackToken: callbackToken}
}

// HandleUploadEvent promotes one uploaded raw object
func (pc *ProcessingController) HandleUploadEvent(w http.ResponseWriter, r *http.Request) {
	if pc.CallbackToken == "" || r.Header.Get("X-Callback-Token") != pc.CallbackToken {
		http.Error(w, "Unauthorized", http.StatusForbidden)
		return
	}

	var request struct {
		Bucket string `json:"bucket"`
		Key    string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Bucket == "" || request.Key == "" {
		http.Error(w, "bucket and key are required", http.StatusBadRequest)
		return
	}

	if err := pc.Processing.HandleRawUpload(r.Context(), request.Bucket, request.Key); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Processing success"})
}

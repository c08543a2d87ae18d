package routes

import (
	"cloudstream_server/controllers"
	"cloudstream_server/services"

	"github.com/gorilla/mux"
)

// RegisterProcessingRoutes sets up the upload-event callback under /api/processing
func RegisterProcessingRoutes(r *mux.Router, processing *services.ProcessingService, callbackToken string) {
	controller := controllers.NewProcessingController(processing, callbackToken)

	processingRouter := r.PathPrefix("/api/processing").Subrouter()
	processingRouter.HandleFunc("/uploadEvent", controller.HandleUploadEvent).Methods("POST")
}

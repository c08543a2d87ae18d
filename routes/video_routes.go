package routes

import (
	"cloudstream_server/controllers"
	"cloudstream_server/services"
	"cloudstream_server/utils"

	"github.com/gorilla/mux"
)

// RegisterVideoRoutes sets up routes for upload/browse/watch under /api/videos
func RegisterVideoRoutes(
	r *mux.Router,
	videos *services.VideoService,
	reactions *services.ReactionService,
	subscriptions *services.SubscriptionService,
	s3 *services.S3Service,
	tokens *utils.TokenManager,
) {
	controller := controllers.NewVideoController(videos, reactions, subscriptions, s3, tokens)

	videoRouter := r.PathPrefix("/api/videos").Subrouter()
	videoRouter.HandleFunc("/uploadUrl", controller.HandleGetUploadURL).Methods("POST")
	videoRouter.HandleFunc("/mine", controller.HandleMyVideos).Methods("GET")
	videoRouter.HandleFunc("/feed", controller.HandleFeed).Methods("GET")
	videoRouter.HandleFunc("/{videoId}/watch", controller.HandleWatch).Methods("GET")
}

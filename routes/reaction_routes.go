package routes

import (
	"cloudstream_server/controllers"
	"cloudstream_server/services"
	"cloudstream_server/utils"

	"github.com/gorilla/mux"
)

// RegisterReactionRoutes sets up routes under /api/reaction
func RegisterReactionRoutes(r *mux.Router, reactions *services.ReactionService, tokens *utils.TokenManager) {
	controller := controllers.NewReactionController(reactions, tokens)

	reactionRouter := r.PathPrefix("/api/reaction").Subrouter()
	reactionRouter.HandleFunc("", controller.HandleSetReaction).Methods("POST")
	reactionRouter.HandleFunc("", controller.HandleGetReaction).Methods("GET")
}

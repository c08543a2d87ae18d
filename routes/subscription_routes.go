package routes

import (
	"cloudstream_server/controllers"
	"cloudstream_server/services"
	"cloudstream_server/utils"

	"github.com/gorilla/mux"
)

// RegisterSubscriptionRoutes sets up routes under /api/subscription
func RegisterSubscriptionRoutes(r *mux.Router, subscriptions *services.SubscriptionService, tokens *utils.TokenManager) {
	controller := controllers.NewSubscriptionController(subscriptions, tokens)

	subscriptionRouter := r.PathPrefix("/api/subscription").Subrouter()
	subscriptionRouter.HandleFunc("/toggle", controller.HandleToggle).Methods("POST")
	subscriptionRouter.HandleFunc("/status", controller.HandleStatus).Methods("GET")
}

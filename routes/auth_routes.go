package routes

import (
	"cloudstream_server/controllers"
	"cloudstream_server/services"
	"cloudstream_server/utils"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for account operations under /api/auth
func RegisterAuthRoutes(r *mux.Router, users *services.UserService, tokens *utils.TokenManager) {
	controller := controllers.NewAuthController(users, tokens)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/signup", controller.HandleSignup).Methods("POST")
	authRouter.HandleFunc("/login", controller.HandleLogin).Methods("POST")
	authRouter.HandleFunc("/me", controller.HandleMe).Methods("GET")
}

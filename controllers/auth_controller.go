package controllers

import (
	"encoding/json"
	"net/http"

	"cloudstream_server/services"
	"cloudstream_server/utils"
)

// AuthController handles signup, login, and session introspection
type AuthController struct {
	Users  *services.UserService
	Tokens *utils.TokenManager
}

// NewAuthController creates a new AuthController instance
func NewAuthController(users *services.UserService, tokens *utils.TokenManager) *AuthController {
	return &AuthController{Users: users, Tokens: tokens}
}

// HandleSignup creates a new account
func (ac *AuthController) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		ChannelName string `json:"channelName"`
		AvatarKey   string `json:"avatarKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Email == "" || request.Password == "" || request.ChannelName == "" {
		http.Error(w, "email, password, and channelName are required", http.StatusBadRequest)
		return
	}

	if err := ac.Users.CreateUser(r.Context(), request.Email, request.Password, request.ChannelName, request.AvatarKey); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Account created! Please login."})
}

// HandleLogin verifies credentials and issues a session token
func (ac *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	profile, err := ac.Users.VerifyUser(r.Context(), request.Email, request.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := ac.Tokens.CreateToken(request.Email, profile.ChannelName, profile.AvatarKey)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":       token,
		"channelName": profile.ChannelName,
	})
}

// HandleMe returns the caller's profile
func (ac *AuthController) HandleMe(w http.ResponseWriter, r *http.Request) {
	session, err := ac.Tokens.SessionFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	profile, err := ac.Users.GetUser(r.Context(), session.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"email":           session.Email,
		"channelName":     profile.ChannelName,
		"joinedAt":        profile.JoinedAt,
		"subscriberCount": profile.SubscriberCount,
	})
}

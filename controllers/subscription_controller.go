package controllers

import (
	"encoding/json"
	"net/http"

	"cloudstream_server/services"
	"cloudstream_server/utils"
)

// SubscriptionController handles subscribe/unsubscribe toggles
type SubscriptionController struct {
	Subscriptions *services.SubscriptionService
	Tokens        *utils.TokenManager
}

// NewSubscriptionController creates a new SubscriptionController instance
func NewSubscriptionController(subscriptions *services.SubscriptionService, tokens *utils.TokenManager) *SubscriptionController {
	return &SubscriptionController{Subscriptions: subscriptions, Tokens: tokens}
}

// HandleToggle flips the caller's subscription to a creator and returns the
// new state plus the creator's updated subscriber count. Self-subscription is
// rejected here, before the toggle touches the store.
func (sc *SubscriptionController) HandleToggle(w http.ResponseWriter, r *http.Request) {
	session, err := sc.Tokens.SessionFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var request struct {
		CreatorEmail string `json:"creatorEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.CreatorEmail == "" {
		http.Error(w, "creatorEmail is required", http.StatusBadRequest)
		return
	}
	if session.Email == request.CreatorEmail {
		writeError(w, services.ErrSelfSubscription)
		return
	}

	nowSubscribed, err := sc.Subscriptions.ToggleSubscription(r.Context(), session.Email, request.CreatorEmail)
	if err != nil {
		writeError(w, err)
		return
	}

	newCount, err := sc.Subscriptions.GetSubscriberCount(r.Context(), request.CreatorEmail)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subscribed": nowSubscribed,
		"newCount":   newCount,
	})
}

// HandleStatus reports whether the caller is subscribed to a creator
func (sc *SubscriptionController) HandleStatus(w http.ResponseWriter, r *http.Request) {
	session, err := sc.Tokens.SessionFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	creatorEmail := r.URL.Query().Get("creatorEmail")
	if creatorEmail == "" {
		http.Error(w, "creatorEmail is required", http.StatusBadRequest)
		return
	}

	subscribed, err := sc.Subscriptions.IsSubscribed(r.Context(), session.Email, creatorEmail)
	if err != nil {
		writeError(w, err)
		return
	}
	count, err := sc.Subscriptions.GetSubscriberCount(r.Context(), creatorEmail)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subscribed": subscribed,
		"count":      count,
	})
}

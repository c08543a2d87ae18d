package controllers

import (
	"encoding/json"
	"net/http"

	"cloudstream_server/models"
	"cloudstream_server/services"
	"cloudstream_server/utils"
)

// ReactionController handles like/dislike votes
type ReactionController struct {
	Reactions *services.ReactionService
	Tokens    *utils.TokenManager
}

// NewReactionController creates a new ReactionController instance
func NewReactionController(reactions *services.ReactionService, tokens *utils.TokenManager) *ReactionController {
	return &ReactionController{Reactions: reactions, Tokens: tokens}
}

// HandleSetReaction moves the caller's vote on a video to LIKE, DISLIKE, or
// NONE and returns the video's updated counters.
func (rc *ReactionController) HandleSetReaction(w http.ResponseWriter, r *http.Request) {
	session, err := rc.Tokens.SessionFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var request struct {
		VideoID      string `json:"videoId"`
		CreatorEmail string `json:"creatorEmail"`
		Action       string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.VideoID == "" || request.CreatorEmail == "" || request.Action == "" {
		http.Error(w, "videoId, creatorEmail, and action are required", http.StatusBadRequest)
		return
	}

	stats, err := rc.Reactions.SetReaction(r.Context(), session.Email, request.CreatorEmail,
		request.VideoID, models.ReactionType(request.Action))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// HandleGetReaction returns the caller's current vote on a video
func (rc *ReactionController) HandleGetReaction(w http.ResponseWriter, r *http.Request) {
	session, err := rc.Tokens.SessionFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	videoID := r.URL.Query().Get("videoId")
	if videoID == "" {
		http.Error(w, "videoId is required", http.StatusBadRequest)
		return
	}

	reaction, err := rc.Reactions.GetUserReaction(r.Context(), session.Email, videoID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reaction": string(reaction)})
}

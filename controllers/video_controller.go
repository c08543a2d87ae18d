package controllers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"cloudstream_server/models"
	"cloudstream_server/services"
	"cloudstream_server/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// VideoController handles the upload flow, browsing, and the watch page data
type VideoController struct {
	Videos        *services.VideoService
	Reactions     *services.ReactionService
	Subscriptions *services.SubscriptionService
	S3            *services.S3Service
	Tokens        *utils.TokenManager
}

// NewVideoController creates a new VideoController instance
func NewVideoController(
	videos *services.VideoService,
	reactions *services.ReactionService,
	subscriptions *services.SubscriptionService,
	s3 *services.S3Service,
	tokens *utils.TokenManager,
) *VideoController {
	return &VideoController{
		Videos:        videos,
		Reactions:     reactions,
		Subscriptions: subscriptions,
		S3:            s3,
		Tokens:        tokens,
	}
}

// Keeps S3 keys URL-safe: "My Video: 2026.mp4" -> "My_Video__2026.mp4"
var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// HandleGetUploadURL creates the PROCESSING video entry and returns presigned
// PUT URLs for the raw video and its thumbnail. One UUID serves as both the
// video id and the S3 key prefix, so the processing pipeline can correlate
// the uploaded object back to the row.
func (vc *VideoController) HandleGetUploadURL(w http.ResponseWriter, r *http.Request) {
	session, err := vc.Tokens.SessionFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var request struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Filename    string `json:"filename"`
		FileType    string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Filename == "" || request.FileType == "" {
		http.Error(w, "filename and fileType are required", http.StatusBadRequest)
		return
	}
	if request.Title == "" {
		request.Title = "Untitled"
	}

	cleanFilename := unsafeKeyChars.ReplaceAllString(request.Filename, "_")
	videoID := uuid.NewString()
	videoKey := videoID + "_" + cleanFilename
	thumbKey := "thumbnails/" + videoID + ".jpg"

	if _, err := vc.Videos.CreateVideoEntry(r.Context(), session.Email, videoID,
		request.Title, request.Description, session.ChannelName, videoKey, thumbKey); err != nil {
		writeError(w, err)
		return
	}

	videoUploadURL, err := vc.S3.GenerateUploadURL(r.Context(), vc.S3.RawBucket, videoKey, request.FileType)
	if err != nil {
		writeError(w, err)
		return
	}
	thumbUploadURL, err := vc.S3.GenerateUploadURL(r.Context(), vc.S3.ProcessedBucket, thumbKey, "image/jpeg")
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"videoUploadUrl": videoUploadURL,
		"thumbUploadUrl": thumbUploadURL,
		"videoId":        videoID,
	})
}

// HandleMyVideos returns the caller's own videos, newest first
func (vc *VideoController) HandleMyVideos(w http.ResponseWriter, r *http.Request) {
	session, err := vc.Tokens.SessionFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	videos, err := vc.Videos.ListUserVideos(r.Context(), session.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"videos": videoSummaries(videos)})
}

// HandleFeed returns every READY video, newest first
func (vc *VideoController) HandleFeed(w http.ResponseWriter, r *http.Request) {
	videos, err := vc.Videos.ListReadyVideos(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"videos": videoSummaries(videos)})
}

// HandleWatch returns everything the watch page needs: playback URL,
// counters, subscriber count, and — when the caller is logged in — their own
// subscription and reaction state. Login is optional here.
func (vc *VideoController) HandleWatch(w http.ResponseWriter, r *http.Request) {
	videoID := mux.Vars(r)["videoId"]

	video, err := vc.Videos.GetVideoByID(r.Context(), videoID)
	if err != nil {
		writeError(w, err)
		return
	}

	if video.Status != models.VideoStatusReady {
		writeJSON(w, http.StatusOK, map[string]string{
			"videoId": video.VideoID,
			"status":  string(video.Status),
		})
		return
	}

	creatorEmail := video.CreatorEmail()
	subCount, err := vc.Subscriptions.GetSubscriberCount(r.Context(), creatorEmail)
	if err != nil {
		writeError(w, err)
		return
	}

	response := map[string]interface{}{
		"videoId":      video.VideoID,
		"status":       string(video.Status),
		"videoUrl":     services.PublicURL(video.ProcessedBucket, video.ProcessedKey),
		"title":        video.Title,
		"description":  video.Description,
		"channelName":  video.ChannelName,
		"likes":        video.LikeCount,
		"dislikes":     video.DislikeCount,
		"creatorEmail": creatorEmail,
		"subCount":     subCount,
		"isSubscribed": false,
		"userReaction": string(models.ReactionNone),
	}

	if session, err := vc.Tokens.SessionFromRequest(r); err == nil {
		isSubscribed, err := vc.Subscriptions.IsSubscribed(r.Context(), session.Email, creatorEmail)
		if err != nil {
			writeError(w, err)
			return
		}
		reaction, err := vc.Reactions.GetUserReaction(r.Context(), session.Email, videoID)
		if err != nil {
			writeError(w, err)
			return
		}
		response["isSubscribed"] = isSubscribed
		response["userReaction"] = string(reaction)
	}

	writeJSON(w, http.StatusOK, response)
}

func videoSummaries(videos []models.Video) []map[string]interface{} {
	summaries := make([]map[string]interface{}, 0, len(videos))
	for _, video := range videos {
		summaries = append(summaries, map[string]interface{}{
			"videoId":      video.VideoID,
			"title":        video.Title,
			"description":  video.Description,
			"channelName":  video.ChannelName,
			"thumbnailKey": video.ThumbnailKey,
			"status":       string(video.Status),
			"likes":        video.LikeCount,
			"dislikes":     video.DislikeCount,
			"createdAt":    video.CreatedAt,
		})
	}
	return summaries
}

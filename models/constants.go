package models

// CloudStreamTable is the default DynamoDB table name. A single table holds
// every entity; rows are distinguished by their sort-key prefix.
const CloudStreamTable = "CloudStreamData"

// ReactionType is a user's current vote on a video.
type ReactionType string

const (
	ReactionLike    ReactionType = "LIKE"
	ReactionDislike ReactionType = "DISLIKE"
	ReactionNone    ReactionType = "NONE"
)

// Valid reports whether the value is one of the recognized reaction states.
func (r ReactionType) Valid() bool {
	switch r {
	case ReactionLike, ReactionDislike, ReactionNone:
		return true
	}
	return false
}

// VideoStatus tracks a video through the upload pipeline. Status only moves
// PROCESSING -> READY, never back.
type VideoStatus string

const (
	VideoStatusProcessing VideoStatus = "PROCESSING"
	VideoStatusReady      VideoStatus = "READY"
)

// Counter attribute names on profile and video rows.
const (
	CounterSubscribers = "subscriber_count"
	CounterLikes       = "like_count"
	CounterDislikes    = "dislike_count"
)

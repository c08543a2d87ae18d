package models

import "strings"

// Composite key scheme for the single table. The partition key groups a
// user's rows; the sort-key prefix distinguishes the row kind within the
// partition and supports begins_with queries.
const (
	UserKeyPrefix     = "USER#"
	VideoKeyPrefix    = "VIDEO#"
	SubKeyPrefix      = "SUB#"
	ReactionKeyPrefix = "REACTION#"

	ProfileSortKey = "PROFILE"
	PointerSortKey = "POINTER"
)

// UserKey addresses a user's profile row.
func UserKey(email string) (pk, sk string) {
	return UserKeyPrefix + email, ProfileSortKey
}

// VideoKey addresses a video row under its creator's partition.
func VideoKey(creatorEmail, videoID string) (pk, sk string) {
	return UserKeyPrefix + creatorEmail, VideoKeyPrefix + videoID
}

// SubscriptionKey addresses the relationship row "subscriber follows creator".
// Presence of the row means subscribed; absence means not subscribed.
func SubscriptionKey(subscriberEmail, creatorEmail string) (pk, sk string) {
	return UserKeyPrefix + subscriberEmail, SubKeyPrefix + creatorEmail
}

// ReactionKey addresses the user's vote row for a video. At most one reaction
// row exists per (user, video).
func ReactionKey(userEmail, videoID string) (pk, sk string) {
	return UserKeyPrefix + userEmail, ReactionKeyPrefix + videoID
}

// VideoPointerKey addresses the video_id -> creator index row, so watch
// lookups resolve by key instead of a table scan.
func VideoPointerKey(videoID string) (pk, sk string) {
	return VideoKeyPrefix + videoID, PointerSortKey
}

// EmailFromUserPK recovers the email embedded in a USER# partition key.
func EmailFromUserPK(pk string) string {
	return strings.TrimPrefix(pk, UserKeyPrefix)
}

// VideoIDFromSK recovers the video id embedded in a VIDEO# sort key.
func VideoIDFromSK(sk string) string {
	return strings.TrimPrefix(sk, VideoKeyPrefix)
}

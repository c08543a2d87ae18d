package models

// Video is a video row under its creator's partition
// (PK = USER#{creator}, SK = VIDEO#{video_id}). It is created with status
// PROCESSING and promoted to READY exactly once by the processing pipeline.
type Video struct {
	PK              string      `dynamodbav:"PK"`
	SK              string      `dynamodbav:"SK"`
	VideoID         string      `dynamodbav:"video_id"`
	Title           string      `dynamodbav:"title"`
	Description     string      `dynamodbav:"description,omitempty"`
	ChannelName     string      `dynamodbav:"channel_name,omitempty"`
	RawKey          string      `dynamodbav:"raw_key"`
	ThumbnailKey    string      `dynamodbav:"thumbnail_key,omitempty"`
	ProcessedKey    string      `dynamodbav:"processed_key,omitempty"`
	ProcessedBucket string      `dynamodbav:"processed_bucket,omitempty"`
	Status          VideoStatus `dynamodbav:"status"`
	LikeCount       int64       `dynamodbav:"like_count,omitempty"`
	DislikeCount    int64       `dynamodbav:"dislike_count,omitempty"`
	CreatedAt       int64       `dynamodbav:"created_at"`
}

// CreatorEmail recovers the creator's email from the partition key.
func (v *Video) CreatorEmail() string {
	return EmailFromUserPK(v.PK)
}

// VideoPointer is the video_id -> creator index row
// (PK = VIDEO#{video_id}, SK = POINTER). It lets watch lookups resolve a
// bare video_id without scanning the table.
type VideoPointer struct {
	PK           string `dynamodbav:"PK"`
	SK           string `dynamodbav:"SK"`
	CreatorEmail string `dynamodbav:"creator_email"`
}

// VideoStats is the pair of display counters returned to viewers.
type VideoStats struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

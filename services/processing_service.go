package services

import (
	"context"
	"log"
)

// ProcessingService promotes raw uploads to playable videos: copy the object
// into the processed bucket, flip the row to READY, delete the raw object.
// This is the server-side half of the pipeline the storage event notification
// triggers; it holds nothing across calls, so redelivered events are safe.
type ProcessingService struct {
	Videos *VideoService
	S3     *S3Service
	// Notify, when set, is called after a successful promotion so the
	// realtime layer can tell the creator their video is ready.
	Notify func(creatorEmail, videoID string)
}

// HandleRawUpload processes one uploaded object.
func (ps *ProcessingService) HandleRawUpload(ctx context.Context, sourceBucket, sourceKey string) error {
	log.Printf("New upload detected: %s in %s", sourceKey, sourceBucket)

	destinationKey := "processed_" + sourceKey
	if err := ps.S3.CopyObject(ctx, sourceBucket, sourceKey, ps.S3.ProcessedBucket, destinationKey); err != nil {
		return err
	}

	video, err := ps.Videos.FindByRawKey(ctx, sourceKey)
	if err != nil {
		return err
	}
	if video == nil {
		log.Printf("⚠️ No video entry found for raw key %s", sourceKey)
		return nil
	}

	if err := ps.Videos.MarkVideoReady(ctx, video.CreatorEmail(), video.VideoID, destinationKey, ps.S3.ProcessedBucket); err != nil {
		return err
	}

	// Raw object cleanup happens only after the row is READY; losing the
	// delete leaves a stray raw file, never a broken video.
	if err := ps.S3.DeleteObject(ctx, sourceBucket, sourceKey); err != nil {
		return err
	}

	if ps.Notify != nil {
		ps.Notify(video.CreatorEmail(), video.VideoID)
	}
	return nil
}

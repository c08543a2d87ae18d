package services

import (
	"context"
	"log"
	"sort"
	"time"

	"cloudstream_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type VideoService struct {
	Dynamo *DynamoService
}

// CreateVideoEntry writes the PROCESSING video row plus the video_id pointer
// row that lets watch lookups resolve the creator without a scan.
func (s *VideoService) CreateVideoEntry(ctx context.Context, creatorEmail, videoID, title, description, channelName, rawKey, thumbnailKey string) (*models.Video, error) {
	pk, sk := models.VideoKey(creatorEmail, videoID)
	video := models.Video{
		PK:           pk,
		SK:           sk,
		VideoID:      videoID,
		Title:        title,
		Description:  description,
		ChannelName:  channelName,
		RawKey:       rawKey,
		ThumbnailKey: thumbnailKey,
		Status:       models.VideoStatusProcessing,
		CreatedAt:    time.Now().Unix(),
	}
	if err := s.Dynamo.PutItem(ctx, video); err != nil {
		return nil, err
	}

	pointerPK, pointerSK := models.VideoPointerKey(videoID)
	pointer := models.VideoPointer{PK: pointerPK, SK: pointerSK, CreatorEmail: creatorEmail}
	if err := s.Dynamo.PutItem(ctx, pointer); err != nil {
		return nil, err
	}

	log.Printf("✅ Video entry created: %s by %s", videoID, creatorEmail)
	return &video, nil
}

// GetVideoByID resolves a bare video id through the pointer row, then fetches
// the video itself. Two key lookups instead of the table scan the id would
// otherwise require.
func (s *VideoService) GetVideoByID(ctx context.Context, videoID string) (*models.Video, error) {
	pointerPK, pointerSK := models.VideoPointerKey(videoID)
	item, err := s.Dynamo.GetItem(ctx, pointerPK, pointerSK)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrVideoNotFound
	}
	pointer, err := models.DecodeVideoPointer(item)
	if err != nil {
		return nil, err
	}

	videoPK, videoSK := models.VideoKey(pointer.CreatorEmail, videoID)
	item, err = s.Dynamo.GetItem(ctx, videoPK, videoSK)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrVideoNotFound
	}
	return models.DecodeVideo(item)
}

// ListUserVideos returns a creator's own videos, newest first.
func (s *VideoService) ListUserVideos(ctx context.Context, creatorEmail string) ([]models.Video, error) {
	items, err := s.Dynamo.QueryByPrefix(ctx, models.UserKeyPrefix+creatorEmail, models.VideoKeyPrefix)
	if err != nil {
		return nil, err
	}
	return decodeAndSortVideos(items)
}

// ListReadyVideos returns every READY video in the table, newest first. This
// is a filtered full-table scan, kept deliberately: the table is assumed
// small and a browse index is out of scope.
func (s *VideoService) ListReadyVideos(ctx context.Context) ([]models.Video, error) {
	items, err := s.Dynamo.ScanAll(ctx,
		"begins_with(SK, :videoPrefix) AND #s = :ready",
		map[string]string{"#s": "status"},
		map[string]types.AttributeValue{
			":videoPrefix": &types.AttributeValueMemberS{Value: models.VideoKeyPrefix},
			":ready":       &types.AttributeValueMemberS{Value: string(models.VideoStatusReady)},
		},
	)
	if err != nil {
		return nil, err
	}
	return decodeAndSortVideos(items)
}

// FindByRawKey locates the video row a raw upload belongs to. The processing
// callback only knows the S3 object key, so this scans on raw_key the way the
// original pipeline worker did.
func (s *VideoService) FindByRawKey(ctx context.Context, rawKey string) (*models.Video, error) {
	items, err := s.Dynamo.ScanAll(ctx,
		"raw_key = :rawKey",
		nil,
		map[string]types.AttributeValue{
			":rawKey": &types.AttributeValueMemberS{Value: rawKey},
		},
	)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return models.DecodeVideo(items[0])
}

// MarkVideoReady flips a video PROCESSING -> READY and records where the
// processed object lives. The condition keeps the flip one-way and makes
// repeat deliveries of the same event a no-op instead of an error.
func (s *VideoService) MarkVideoReady(ctx context.Context, creatorEmail, videoID, processedKey, processedBucket string) error {
	pk, sk := models.VideoKey(creatorEmail, videoID)
	err := s.Dynamo.UpdateItemExpr(ctx, pk, sk,
		"SET #s = :ready, #pkey = :pkey, #pbucket = :pbucket",
		"#s = :processing",
		map[string]string{
			"#s":       "status",
			"#pkey":    "processed_key",
			"#pbucket": "processed_bucket",
		},
		map[string]types.AttributeValue{
			":ready":      &types.AttributeValueMemberS{Value: string(models.VideoStatusReady)},
			":processing": &types.AttributeValueMemberS{Value: string(models.VideoStatusProcessing)},
			":pkey":       &types.AttributeValueMemberS{Value: processedKey},
			":pbucket":    &types.AttributeValueMemberS{Value: processedBucket},
		},
	)
	if err != nil {
		if IsConditionalCheckFailed(err) {
			log.Printf("Video %s already READY, skipping", videoID)
			return nil
		}
		return err
	}
	log.Printf("✅ Video %s marked READY", videoID)
	return nil
}

func decodeAndSortVideos(items []map[string]types.AttributeValue) ([]models.Video, error) {
	videos := make([]models.Video, 0, len(items))
	for _, item := range items {
		video, err := models.DecodeVideo(item)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *video)
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt > videos[j].CreatedAt
	})
	return videos, nil
}

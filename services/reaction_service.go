package services

import (
	"context"
	"fmt"
	"log"

	"cloudstream_server/models"
	"cloudstream_server/utils"
)

type ReactionService struct {
	Dynamo *DynamoService
}

// GetUserReaction returns the user's current vote on a video. An absent row
// is the designed encoding of "no vote" and comes back as NONE.
func (s *ReactionService) GetUserReaction(ctx context.Context, userEmail, videoID string) (models.ReactionType, error) {
	pk, sk := models.ReactionKey(userEmail, videoID)
	item, err := s.Dynamo.GetItem(ctx, pk, sk)
	if err != nil {
		return models.ReactionNone, err
	}
	if item == nil {
		return models.ReactionNone, nil
	}
	reaction, err := models.DecodeReaction(item)
	if err != nil {
		return models.ReactionNone, err
	}
	return reaction.Type, nil
}

// GetVideoStats reads the video's display counters. Absent attributes count
// as zero.
func (s *ReactionService) GetVideoStats(ctx context.Context, creatorEmail, videoID string) (*models.VideoStats, error) {
	pk, sk := models.VideoKey(creatorEmail, videoID)
	item, err := s.Dynamo.GetItem(ctx, pk, sk)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return &models.VideoStats{}, nil
	}
	return &models.VideoStats{
		Likes:    utils.ExtractNumber(item, models.CounterLikes),
		Dislikes: utils.ExtractNumber(item, models.CounterDislikes),
	}, nil
}

// SetReaction moves the user's vote on a video to newAction and returns the
// video's counters afterward.
//
// Setting the vote to its current value is a true no-op: no reaction-row
// write, no counter updates, just the counters read back. Otherwise the
// reaction row is deleted (NONE) or fully overwritten with the new type, and
// each nonzero transition delta is applied as its own atomic counter update.
//
// Each counter update is atomic on its own, but the row write and the counter
// updates are not atomic as a group. Two overlapping SetReaction calls for
// the same (user, video) can interleave and leave the row and counters
// transiently inconsistent; correct clients do not overlap their own votes,
// and the gap is accepted rather than hidden behind a lock.
func (s *ReactionService) SetReaction(ctx context.Context, userEmail, creatorEmail, videoID string, newAction models.ReactionType) (*models.VideoStats, error) {
	if !newAction.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, newAction)
	}

	current, err := s.GetUserReaction(ctx, userEmail, videoID)
	if err != nil {
		return nil, err
	}
	if current == newAction {
		return s.GetVideoStats(ctx, creatorEmail, videoID)
	}

	reactionPK, reactionSK := models.ReactionKey(userEmail, videoID)
	if newAction == models.ReactionNone {
		if err := s.Dynamo.DeleteItem(ctx, reactionPK, reactionSK); err != nil {
			return nil, err
		}
	} else {
		reaction := models.Reaction{PK: reactionPK, SK: reactionSK, Type: newAction}
		if err := s.Dynamo.PutItem(ctx, reaction); err != nil {
			return nil, err
		}
	}

	deltas, err := ReactionTransitionDeltas(current, newAction)
	if err != nil {
		return nil, err
	}
	videoPK, videoSK := models.VideoKey(creatorEmail, videoID)
	for _, delta := range deltas {
		if delta.Delta == 0 {
			continue
		}
		if _, err := s.Dynamo.UpdateCounter(ctx, videoPK, videoSK, delta.Counter, delta.Delta); err != nil {
			return nil, err
		}
	}

	log.Printf("Reaction %s -> %s by %s on video %s", current, newAction, userEmail, videoID)
	return s.GetVideoStats(ctx, creatorEmail, videoID)
}

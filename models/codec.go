package models

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrMalformedItem reports a stored item missing required attributes or
// carrying wrong types. This indicates schema drift or data corruption and is
// fatal to the single operation that hit it.
var ErrMalformedItem = errors.New("malformed item")

// DecodeUserProfile unmarshals and validates a PROFILE row.
func DecodeUserProfile(item map[string]types.AttributeValue) (*UserProfile, error) {
	var profile UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("%w: profile: %v", ErrMalformedItem, err)
	}
	if profile.PK == "" || profile.SK != ProfileSortKey || profile.ChannelName == "" {
		return nil, fmt.Errorf("%w: profile missing required attributes", ErrMalformedItem)
	}
	return &profile, nil
}

// DecodeVideo unmarshals and validates a VIDEO# row.
func DecodeVideo(item map[string]types.AttributeValue) (*Video, error) {
	var video Video
	if err := attributevalue.UnmarshalMap(item, &video); err != nil {
		return nil, fmt.Errorf("%w: video: %v", ErrMalformedItem, err)
	}
	if video.PK == "" || video.VideoID == "" {
		return nil, fmt.Errorf("%w: video missing required attributes", ErrMalformedItem)
	}
	if video.Status != VideoStatusProcessing && video.Status != VideoStatusReady {
		return nil, fmt.Errorf("%w: video %s has unknown status %q", ErrMalformedItem, video.VideoID, video.Status)
	}
	return &video, nil
}

// DecodeVideoPointer unmarshals and validates a POINTER index row.
func DecodeVideoPointer(item map[string]types.AttributeValue) (*VideoPointer, error) {
	var pointer VideoPointer
	if err := attributevalue.UnmarshalMap(item, &pointer); err != nil {
		return nil, fmt.Errorf("%w: video pointer: %v", ErrMalformedItem, err)
	}
	if pointer.CreatorEmail == "" {
		return nil, fmt.Errorf("%w: video pointer missing creator_email", ErrMalformedItem)
	}
	return &pointer, nil
}

// DecodeReaction unmarshals and validates a REACTION# row. Stored rows only
// ever hold LIKE or DISLIKE; "no vote" is the absence of the row.
func DecodeReaction(item map[string]types.AttributeValue) (*Reaction, error) {
	var reaction Reaction
	if err := attributevalue.UnmarshalMap(item, &reaction); err != nil {
		return nil, fmt.Errorf("%w: reaction: %v", ErrMalformedItem, err)
	}
	if reaction.Type != ReactionLike && reaction.Type != ReactionDislike {
		return nil, fmt.Errorf("%w: reaction has unknown type %q", ErrMalformedItem, reaction.Type)
	}
	return &reaction, nil
}

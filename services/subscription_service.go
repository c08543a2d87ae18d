package services

import (
	"context"
	"log"
	"time"

	"cloudstream_server/models"
	"cloudstream_server/utils"
)

type SubscriptionService struct {
	Dynamo *DynamoService
}

// ToggleSubscription flips the subscriber -> creator relationship and adjusts
// the creator's subscriber_count. Returns whether the subscriber is now
// subscribed.
//
// Precondition: subscriberEmail != creatorEmail. The HTTP layer rejects
// self-subscription before this is called; the toggle itself does not check.
//
// The relationship row and the counter are two separate writes with no
// transaction around them; a failure between the two leaves the counter stale
// until a later toggle corrects it. Counters are advisory display values, so
// this gap is accepted rather than papered over with a lock.
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, subscriberEmail, creatorEmail string) (bool, error) {
	subPK, subSK := models.SubscriptionKey(subscriberEmail, creatorEmail)

	item, err := s.Dynamo.GetItem(ctx, subPK, subSK)
	if err != nil {
		return false, err
	}

	profilePK, profileSK := models.UserKey(creatorEmail)

	if item != nil {
		// Unsubscribe: remove the relationship, then decrement.
		if err := s.Dynamo.DeleteItem(ctx, subPK, subSK); err != nil {
			return false, err
		}
		delta := SubscriptionDelta(false)
		if _, err := s.Dynamo.UpdateCounter(ctx, profilePK, profileSK, delta.Counter, delta.Delta); err != nil {
			return false, err
		}
		log.Printf("Unsubscribed %s from %s", subscriberEmail, creatorEmail)
		return false, nil
	}

	// Subscribe: create the relationship, then increment. UpdateCounter
	// zero-defaults the attribute for creators nobody has subscribed to yet.
	subscription := models.Subscription{
		PK:        subPK,
		SK:        subSK,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.Dynamo.PutItem(ctx, subscription); err != nil {
		return false, err
	}
	delta := SubscriptionDelta(true)
	if _, err := s.Dynamo.UpdateCounter(ctx, profilePK, profileSK, delta.Counter, delta.Delta); err != nil {
		return false, err
	}
	log.Printf("Subscribed %s to %s", subscriberEmail, creatorEmail)
	return true, nil
}

// GetSubscriberCount reads the creator's subscriber_count. A missing profile
// or missing attribute counts as zero.
func (s *SubscriptionService) GetSubscriberCount(ctx context.Context, creatorEmail string) (int64, error) {
	pk, sk := models.UserKey(creatorEmail)
	item, err := s.Dynamo.GetItem(ctx, pk, sk)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}
	return utils.ExtractNumber(item, models.CounterSubscribers), nil
}

// IsSubscribed reports whether the relationship row exists.
func (s *SubscriptionService) IsSubscribed(ctx context.Context, subscriberEmail, creatorEmail string) (bool, error) {
	pk, sk := models.SubscriptionKey(subscriberEmail, creatorEmail)
	item, err := s.Dynamo.GetItem(ctx, pk, sk)
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

package services

import (
	"fmt"

	"cloudstream_server/models"
)

// CounterDelta is one signed adjustment to a named counter attribute.
type CounterDelta struct {
	Counter string
	Delta   int64
}

// reactionCounters maps each reaction state to the counter it occupies while
// active. NONE occupies no counter.
var reactionCounters = map[models.ReactionType]string{
	models.ReactionLike:    models.CounterLikes,
	models.ReactionDislike: models.CounterDislikes,
}

// ReactionTransitionDeltas computes the counter adjustments for a user moving
// between reaction states: leaving a state decrements its counter, entering
// one increments it. current == next short-circuits to zero deltas — checked
// before anything else so a no-op never emits a cancelling -1/+1 pair, which
// would be numerically harmless but cost two writes and open a race window.
// The function itself writes nothing; callers apply the deltas.
func ReactionTransitionDeltas(current, next models.ReactionType) ([]CounterDelta, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, next)
	}
	if current == next {
		return nil, nil
	}

	var deltas []CounterDelta
	if counter, ok := reactionCounters[current]; ok {
		deltas = append(deltas, CounterDelta{Counter: counter, Delta: -1})
	}
	if counter, ok := reactionCounters[next]; ok {
		deltas = append(deltas, CounterDelta{Counter: counter, Delta: +1})
	}
	return deltas, nil
}

// SubscriptionDelta returns the subscriber_count adjustment for entering or
// leaving the subscribed state.
func SubscriptionDelta(nowSubscribed bool) CounterDelta {
	if nowSubscribed {
		return CounterDelta{Counter: models.CounterSubscribers, Delta: 1}
	}
	return CounterDelta{Counter: models.CounterSubscribers, Delta: -1}
}

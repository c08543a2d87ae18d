package services

import (
	"testing"

	"cloudstream_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionTransitionDeltas(t *testing.T) {
	tests := []struct {
		name    string
		current models.ReactionType
		next    models.ReactionType
		want    []CounterDelta
	}{
		{
			name:    "none to like",
			current: models.ReactionNone,
			next:    models.ReactionLike,
			want:    []CounterDelta{{Counter: models.CounterLikes, Delta: 1}},
		},
		{
			name:    "none to dislike",
			current: models.ReactionNone,
			next:    models.ReactionDislike,
			want:    []CounterDelta{{Counter: models.CounterDislikes, Delta: 1}},
		},
		{
			name:    "like to dislike",
			current: models.ReactionLike,
			next:    models.ReactionDislike,
			want: []CounterDelta{
				{Counter: models.CounterLikes, Delta: -1},
				{Counter: models.CounterDislikes, Delta: 1},
			},
		},
		{
			name:    "dislike to like",
			current: models.ReactionDislike,
			next:    models.ReactionLike,
			want: []CounterDelta{
				{Counter: models.CounterDislikes, Delta: -1},
				{Counter: models.CounterLikes, Delta: 1},
			},
		},
		{
			name:    "like to none",
			current: models.ReactionLike,
			next:    models.ReactionNone,
			want:    []CounterDelta{{Counter: models.CounterLikes, Delta: -1}},
		},
		{
			name:    "dislike to none",
			current: models.ReactionDislike,
			next:    models.ReactionNone,
			want:    []CounterDelta{{Counter: models.CounterDislikes, Delta: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deltas, err := ReactionTransitionDeltas(tt.current, tt.next)
			require.NoError(t, err)
			assert.Equal(t, tt.want, deltas)
		})
	}
}

// A repeated state emits zero deltas, not a cancelling -1/+1 pair.
func TestReactionTransitionDeltasNoOp(t *testing.T) {
	for _, state := range []models.ReactionType{models.ReactionNone, models.ReactionLike, models.ReactionDislike} {
		deltas, err := ReactionTransitionDeltas(state, state)
		require.NoError(t, err)
		assert.Empty(t, deltas, "transition %s -> %s should emit no deltas", state, state)
	}
}

func TestReactionTransitionDeltasInvalidState(t *testing.T) {
	_, err := ReactionTransitionDeltas(models.ReactionNone, models.ReactionType("SUPERLIKE"))
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestSubscriptionDelta(t *testing.T) {
	assert.Equal(t, CounterDelta{Counter: models.CounterSubscribers, Delta: 1}, SubscriptionDelta(true))
	assert.Equal(t, CounterDelta{Counter: models.CounterSubscribers, Delta: -1}, SubscriptionDelta(false))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyScheme(t *testing.T) {
	pk, sk := UserKey("alice@example.com")
	assert.Equal(t, "USER#alice@example.com", pk)
	assert.Equal(t, "PROFILE", sk)

	pk, sk = VideoKey("alice@example.com", "vid-1")
	assert.Equal(t, "USER#alice@example.com", pk)
	assert.Equal(t, "VIDEO#vid-1", sk)

	pk, sk = SubscriptionKey("bob@example.com", "alice@example.com")
	assert.Equal(t, "USER#bob@example.com", pk)
	assert.Equal(t, "SUB#alice@example.com", sk)

	pk, sk = ReactionKey("bob@example.com", "vid-1")
	assert.Equal(t, "USER#bob@example.com", pk)
	assert.Equal(t, "REACTION#vid-1", sk)

	pk, sk = VideoPointerKey("vid-1")
	assert.Equal(t, "VIDEO#vid-1", pk)
	assert.Equal(t, "POINTER", sk)
}

func TestKeyRoundTrip(t *testing.T) {
	pk, sk := VideoKey("alice@example.com", "vid-1")
	assert.Equal(t, "alice@example.com", EmailFromUserPK(pk))
	assert.Equal(t, "vid-1", VideoIDFromSK(sk))
}

func TestReactionTypeValid(t *testing.T) {
	assert.True(t, ReactionLike.Valid())
	assert.True(t, ReactionDislike.Valid())
	assert.True(t, ReactionNone.Valid())
	assert.False(t, ReactionType("like").Valid(), "reaction states are case-sensitive")
	assert.False(t, ReactionType("").Valid())
}

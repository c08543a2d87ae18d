package models

// Subscription is the relationship row (PK = USER#{subscriber},
// SK = SUB#{creator}). The row carries no state beyond its creation time;
// its presence alone means "subscribed". Rows are created and deleted by the
// toggle, never mutated in place.
type Subscription struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	CreatedAt int64  `dynamodbav:"created_at"`
}

// Reaction is the per-user vote row (PK = USER#{user},
// SK = REACTION#{video_id}). Absence of the row means no vote.
type Reaction struct {
	PK   string       `dynamodbav:"PK"`
	SK   string       `dynamodbav:"SK"`
	Type ReactionType `dynamodbav:"type"`
}

package models

// UserProfile is the per-account row (PK = USER#{email}, SK = PROFILE).
// One profile exists per email; subscriber_count is maintained atomically by
// the subscription service and defaults to zero when the attribute is absent.
type UserProfile struct {
	PK              string `dynamodbav:"PK"`
	SK              string `dynamodbav:"SK"`
	ChannelName     string `dynamodbav:"channel_name"`
	PasswordHash    string `dynamodbav:"password_hash"`
	AvatarKey       string `dynamodbav:"avatar_key,omitempty"`
	JoinedAt        int64  `dynamodbav:"joined_at"`
	SubscriberCount int64  `dynamodbav:"subscriber_count,omitempty"`
}

// Email recovers the account email from the partition key; the original
// schema stores it nowhere else.
func (u *UserProfile) Email() string {
	return EmailFromUserPK(u.PK)
}

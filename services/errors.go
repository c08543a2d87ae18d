package services

import "errors"

// Domain errors surfaced to the HTTP layer. Store and decode failures are
// wrapped and propagated unchanged; nothing in the services swallows an error
// to substitute a default.
var (
	ErrUserExists       = errors.New("user already exists")
	ErrInvalidLogin     = errors.New("invalid email or password")
	ErrUserNotFound     = errors.New("user not found")
	ErrVideoNotFound    = errors.New("video not found")
	ErrSelfSubscription = errors.New("cannot subscribe to yourself")
	ErrInvalidAction    = errors.New("invalid reaction action")
)

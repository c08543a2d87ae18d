package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloudstream_server/models"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Dynamo *DynamoService
}

// CreateUser registers a new account. Exactly one profile may exist per
// email; a duplicate signup fails with ErrUserExists before anything is
// written.
func (s *UserService) CreateUser(ctx context.Context, email, password, channelName, avatarKey string) error {
	pk, sk := models.UserKey(email)

	existing, err := s.Dynamo.GetItem(ctx, pk, sk)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	profile := models.UserProfile{
		PK:           pk,
		SK:           sk,
		ChannelName:  channelName,
		PasswordHash: string(hash),
		AvatarKey:    avatarKey,
		JoinedAt:     time.Now().Unix(),
	}
	if err := s.Dynamo.PutItem(ctx, profile); err != nil {
		return err
	}

	log.Printf("✅ User created: %s (%s)", email, channelName)
	return nil
}

// VerifyUser checks login credentials and returns the profile on success.
// Unknown email and wrong password both come back as ErrInvalidLogin.
func (s *UserService) VerifyUser(ctx context.Context, email, password string) (*models.UserProfile, error) {
	pk, sk := models.UserKey(email)
	item, err := s.Dynamo.GetItem(ctx, pk, sk)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrInvalidLogin
	}

	profile, err := models.DecodeUserProfile(item)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidLogin
	}
	return profile, nil
}

// GetUser fetches a profile by email.
func (s *UserService) GetUser(ctx context.Context, email string) (*models.UserProfile, error) {
	pk, sk := models.UserKey(email)
	item, err := s.Dynamo.GetItem(ctx, pk, sk)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrUserNotFound
	}
	return models.DecodeUserProfile(item)
}

package utils

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what a signed login token carries. It stands in for the
// server-side session the original web app kept: the caller's email and
// channel name travel with every request instead of living in ambient state.
type SessionClaims struct {
	Email       string `json:"email"`
	ChannelName string `json:"channelName"`
	AvatarKey   string `json:"avatarKey,omitempty"`
	jwt.RegisteredClaims
}

var ErrUnauthorized = errors.New("missing or invalid session token")

// TokenManager signs and verifies session tokens.
type TokenManager struct {
	Secret []byte
	TTL    time.Duration
}

// CreateToken issues a signed session token for a logged-in user.
func (tm *TokenManager) CreateToken(email, channelName, avatarKey string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email:       email,
		ChannelName: channelName,
		AvatarKey:   avatarKey,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.Secret)
}

// ParseToken verifies a session token and returns its claims.
func (tm *TokenManager) ParseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return tm.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// SessionFromRequest extracts the caller's session from the Authorization
// header ("Bearer <token>").
func (tm *TokenManager) SessionFromRequest(r *http.Request) (*SessionClaims, error) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, ErrUnauthorized
	}
	return tm.ParseToken(strings.TrimPrefix(header, prefix))
}

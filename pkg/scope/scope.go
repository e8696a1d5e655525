// Package scope issues and verifies session tokens and carries the caller's
// identity through a request context.
package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Payload is the identity stored in a session token.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

//go:generate mockery --name Manager
type Manager interface {
	CreateToken(userID, username string) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

type Option func(*implManager)

// WithClock overrides the clock used for issuing and checking expiry.
func WithClock(now func() time.Time) Option {
	return func(m *implManager) { m.now = now }
}

func New(secretKey string, ttl time.Duration, opts ...Option) Manager {
	m := &implManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *implManager) CreateToken(userID, username string) (string, error) {
	now := m.now()
	claims := Payload{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	var payload Payload
	_, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (any, error) {
		return m.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if payload.UserID == "" {
		return Payload{}, ErrInvalidToken
	}
	return payload, nil
}

type payloadKey struct{}

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(Payload)
	return payload, ok
}

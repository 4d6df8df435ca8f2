package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"spendo/internal/storage"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingName        = errors.New("name is required")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Service wraps an Authenticator with input validation, profile
// persistence and session-token issuance.
type Service struct {
	authenticator Authenticator
	kv            storage.KV
	secret        []byte
	tokenTTL      time.Duration
}

func NewService(authenticator Authenticator, kv storage.KV, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		authenticator: authenticator,
		kv:            kv,
		secret:        secret,
		tokenTTL:      tokenTTL,
	}
}

// SignIn authenticates, persists the profile and returns it with a
// session token. Validation happens before the authenticator is
// invoked, so a rejected request has no side effects.
func (s *Service) SignIn(ctx context.Context, email, password string) (Profile, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Profile{}, "", ErrMissingCredentials
	}

	profile, err := s.authenticator.SignIn(ctx, email, password)
	if err != nil {
		return Profile{}, "", fmt.Errorf("signing in: %w", err)
	}

	return s.establish(ctx, profile)
}

func (s *Service) SignUp(ctx context.Context, email, password, name, businessName, currency string) (Profile, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Profile{}, "", ErrMissingCredentials
	}

	if strings.TrimSpace(name) == "" {
		return Profile{}, "", ErrMissingName
	}

	profile, err := s.authenticator.SignUp(ctx, email, password, name, businessName, currency)
	if err != nil {
		return Profile{}, "", fmt.Errorf("signing up: %w", err)
	}

	return s.establish(ctx, profile)
}

func (s *Service) SocialSignIn(ctx context.Context, provider Provider) (Profile, string, error) {
	profile, err := s.authenticator.SocialSignIn(ctx, provider)
	if err != nil {
		return Profile{}, "", fmt.Errorf("social sign in: %w", err)
	}

	return s.establish(ctx, profile)
}

func (s *Service) establish(ctx context.Context, profile Profile) (Profile, string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return Profile{}, "", fmt.Errorf("encoding profile: %w", err)
	}

	if err := s.kv.Set(ctx, storage.ProfileKey(profile.ID), data); err != nil {
		return Profile{}, "", fmt.Errorf("saving profile: %w", err)
	}

	token, err := s.issueToken(profile.ID)
	if err != nil {
		return Profile{}, "", err
	}

	return profile, token, nil
}

// Profile loads a stored profile by user id.
func (s *Service) Profile(ctx context.Context, userID string) (Profile, error) {
	data, ok, err := s.kv.Get(ctx, storage.ProfileKey(userID))
	if err != nil {
		return Profile{}, fmt.Errorf("loading profile: %w", err)
	}

	if !ok {
		return Profile{}, fmt.Errorf("no profile for user %s", userID)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}

	return profile, nil
}

func (s *Service) issueToken(userID string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

// Verify parses a session token and returns the user id it was issued
// for.
func (s *Service) Verify(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// Package session holds the identity state for one client: the current
// user profile and that user's open transaction store. State is
// explicit, created on sign-in and torn down on sign-out, and injected
// into whatever needs it.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"spendo/internal/auth"
	"spendo/internal/transaction"
)

var (
	ErrNotSignedIn        = errors.New("not signed in")
	ErrMissingCredentials = errors.New("email and password are required")
)

// Session is the single current-user slot.
type Session struct {
	authenticator auth.Authenticator
	persister     transaction.Persister
	storeOpts     []transaction.Option

	mu      sync.Mutex
	profile *auth.Profile
	store   *transaction.Store
}

func New(authenticator auth.Authenticator, persister transaction.Persister, storeOpts ...transaction.Option) *Session {
	return &Session{
		authenticator: authenticator,
		persister:     persister,
		storeOpts:     storeOpts,
	}
}

// SignIn authenticates and opens the user's transaction store. A
// previous user's state is replaced wholesale, so records never leak
// between scopes.
func (s *Session) SignIn(ctx context.Context, email, password string) (auth.Profile, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return auth.Profile{}, ErrMissingCredentials
	}

	profile, err := s.authenticator.SignIn(ctx, email, password)
	if err != nil {
		return auth.Profile{}, fmt.Errorf("signing in: %w", err)
	}

	return profile, s.open(ctx, profile)
}

func (s *Session) SignUp(ctx context.Context, email, password, name, businessName, currency string) (auth.Profile, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return auth.Profile{}, ErrMissingCredentials
	}

	profile, err := s.authenticator.SignUp(ctx, email, password, name, businessName, currency)
	if err != nil {
		return auth.Profile{}, fmt.Errorf("signing up: %w", err)
	}

	return profile, s.open(ctx, profile)
}

func (s *Session) SocialSignIn(ctx context.Context, provider auth.Provider) (auth.Profile, error) {
	profile, err := s.authenticator.SocialSignIn(ctx, provider)
	if err != nil {
		return auth.Profile{}, fmt.Errorf("social sign in: %w", err)
	}

	return profile, s.open(ctx, profile)
}

func (s *Session) open(ctx context.Context, profile auth.Profile) error {
	store, err := transaction.Open(ctx, profile.ID, s.persister, s.storeOpts...)
	if err != nil {
		return fmt.Errorf("opening transaction store: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = &profile
	s.store = store

	return nil
}

// SignOut clears the current-user slot.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = nil
	s.store = nil
}

// User returns the signed-in profile.
func (s *Session) User() (auth.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return auth.Profile{}, ErrNotSignedIn
	}

	return *s.profile, nil
}

// Store returns the signed-in user's transaction store.
func (s *Session) Store() (*transaction.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNotSignedIn
	}

	return s.store, nil
}

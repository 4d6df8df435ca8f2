package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Provider identifies a social sign-in provider.
type Provider string

const (
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
)

// Profile is the identity record of a signed-in user.
type Profile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Currency     string `json:"currency"`
}

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (Profile, error)
	SignUp(ctx context.Context, email, password, name, businessName, currency string) (Profile, error)
	SocialSignIn(ctx context.Context, provider Provider) (Profile, error)
}

// Demo is the development authenticator: it accepts any credentials
// after a simulated upstream delay. User ids are derived from the email
// so the same address maps to the same transaction scope across
// sign-ins.
type Demo struct {
	Delay time.Duration
}

var demoNamespace = uuid.MustParse("9f2c1f7e-5a24-4a0b-8f33-7f2d7a1c9b10")

func (d Demo) SignIn(ctx context.Context, email, _ string) (Profile, error) {
	if err := d.wait(ctx); err != nil {
		return Profile{}, err
	}

	return Profile{
		ID:           demoID(email),
		Email:        email,
		Name:         "Demo User",
		BusinessName: "Demo Business",
		Currency:     "USD",
	}, nil
}

func (d Demo) SignUp(ctx context.Context, email, _, name, businessName, currency string) (Profile, error) {
	if err := d.wait(ctx); err != nil {
		return Profile{}, err
	}

	return Profile{
		ID:           demoID(email),
		Email:        email,
		Name:         name,
		BusinessName: businessName,
		Currency:     currency,
	}, nil
}

func (d Demo) SocialSignIn(ctx context.Context, provider Provider) (Profile, error) {
	if err := d.wait(ctx); err != nil {
		return Profile{}, err
	}

	email := fmt.Sprintf("user@%s.com", provider)

	return Profile{
		ID:           demoID(email),
		Email:        email,
		Name:         title(string(provider)) + " User",
		BusinessName: title(string(provider)) + " Business",
		Currency:     "USD",
	}, nil
}

func (d Demo) wait(ctx context.Context) error {
	if d.Delay <= 0 {
		return nil
	}

	select {
	case <-time.After(d.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func demoID(email string) string {
	return uuid.NewSHA1(demoNamespace, []byte(email)).String()
}

func title(s string) string {
	if s == "" {
		return s
	}

	return string(s[0]-'a'+'A') + s[1:]
}

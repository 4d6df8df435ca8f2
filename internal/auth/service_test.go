package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"spendo/internal/auth"
	"spendo/internal/storage"
)

func newService(t *testing.T, authenticator auth.Authenticator) *auth.Service {
	t.Helper()
	return auth.NewService(authenticator, storage.NewMemory(), []byte("test-secret"), time.Hour)
}

func TestService_SignIn(t *testing.T) {
	type testCase struct {
		name      string
		email     string
		password  string
		setupMock func(m *auth.MockAuthenticator)
		wantErr   error
	}

	profile := auth.Profile{ID: "u-1", Email: "demo@example.com", Name: "Demo User", Currency: "USD"}

	tests := []testCase{
		{
			name:     "Success",
			email:    "demo@example.com",
			password: "hunter2",
			setupMock: func(m *auth.MockAuthenticator) {
				m.EXPECT().
					SignIn(gomock.Any(), "demo@example.com", "hunter2").
					Return(profile, nil)
			},
		},
		{
			name:     "MissingEmail",
			email:    "  ",
			password: "hunter2",
			wantErr:  auth.ErrMissingCredentials,
		},
		{
			name:    "MissingPassword",
			email:   "demo@example.com",
			wantErr: auth.ErrMissingCredentials,
		},
		{
			name:     "AuthenticatorError",
			email:    "demo@example.com",
			password: "hunter2",
			setupMock: func(m *auth.MockAuthenticator) {
				m.EXPECT().
					SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(auth.Profile{}, errors.New("upstream down"))
			},
			wantErr: errors.New("upstream down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authenticator := auth.NewMockAuthenticator(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(authenticator)
			}

			svc := newService(t, authenticator)

			got, token, err := svc.SignIn(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Empty(t, token)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, profile, got)

			// The token resolves back to the same user.
			userID, err := svc.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, profile.ID, userID)

			// The profile was persisted.
			stored, err := svc.Profile(context.Background(), profile.ID)
			require.NoError(t, err)
			assert.Equal(t, profile, stored)
		})
	}
}

func TestService_SignUp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, auth.NewMockAuthenticator(ctrl))

	_, _, err := svc.SignUp(context.Background(), "a@b.com", "pw", "  ", "Biz", "EUR")
	assert.ErrorIs(t, err, auth.ErrMissingName)

	_, _, err = svc.SignUp(context.Background(), "", "pw", "Ana", "Biz", "EUR")
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
}

func TestService_Verify_RejectsForgedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authenticator := auth.NewMockAuthenticator(ctrl)
	authenticator.EXPECT().
		SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(auth.Profile{ID: "u-1"}, nil)

	svc := newService(t, authenticator)

	_, token, err := svc.SignIn(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	other := auth.NewService(auth.Demo{}, storage.NewMemory(), []byte("different-secret"), time.Hour)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestDemo(t *testing.T) {
	d := auth.Demo{}

	first, err := d.SignIn(context.Background(), "someone@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", first.Name)
	assert.Equal(t, "USD", first.Currency)

	// Same email maps to the same id; a different email does not.
	again, err := d.SignIn(context.Background(), "someone@example.com", "other-password")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	other, err := d.SignIn(context.Background(), "else@example.com", "x")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestDemo_SocialSignIn(t *testing.T) {
	d := auth.Demo{}

	p, err := d.SocialSignIn(context.Background(), auth.ProviderGoogle)
	require.NoError(t, err)
	assert.Equal(t, "user@google.com", p.Email)
	assert.Equal(t, "Google User", p.Name)
	assert.Equal(t, "Google Business", p.BusinessName)
}

//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"promocode-service/internal/domain/business"
	"promocode-service/internal/domain/user"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/pkg/password"
	"promocode-service/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "SuperStrong1!"

func newAuthFixture() (*memStore, *fakeTokens, commands.AuthCommands) {
	store := newMemStore()
	tokens := &fakeTokens{}
	return store, tokens, commands.NewAuthCommands(store, tokens, clock.NewMockClock(testNow))
}

func signUpRequest(email string) commands.SignUpUserRequest {
	return commands.SignUpUserRequest{
		Name:     "Ivan",
		Surname:  "Petrov",
		Email:    email,
		Password: testPassword,
		Age:      23,
		Country:  "ru",
	}
}

func TestSignUpUser(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*commands.SignUpUserRequest)
		wantErr error
	}{
		{name: "success"},
		{
			name:    "invalid email",
			mutate:  func(r *commands.SignUpUserRequest) { r.Email = "not-an-email" },
			wantErr: user.ErrInvalidEmail,
		},
		{
			name:    "weak password",
			mutate:  func(r *commands.SignUpUserRequest) { r.Password = "password" },
			wantErr: user.ErrPasswordTooWeak,
		},
		{
			name:    "age out of range",
			mutate:  func(r *commands.SignUpUserRequest) { r.Age = 101 },
			wantErr: user.ErrInvalidAge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, tokens, uc := newAuthFixture()
			req := signUpRequest("ivan@example.com")
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			res, err := uc.SignUpUser(context.Background(), req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Empty(t, store.users)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-"+res.SubjectID.String(), res.Token)
			assert.Equal(t, tokens.TokenDuration(), res.ExpiresIn)
			require.Len(t, tokens.issued, 1)
			assert.Equal(t, user.RoleUser, tokens.issued[0].role)

			stored := store.users[res.SubjectID]
			require.NotNil(t, stored)
			assert.NoError(t, password.ComparePassword(stored.PasswordHash(), testPassword))
		})
	}
}

func TestSignUpUserDuplicateEmail(t *testing.T) {
	_, _, uc := newAuthFixture()

	_, err := uc.SignUpUser(context.Background(), signUpRequest("ivan@example.com"))
	require.NoError(t, err)

	_, err = uc.SignUpUser(context.Background(), signUpRequest("ivan@example.com"))
	assert.True(t, errs.Is(err, commands.ErrEmailTaken))
}

func TestSignInUser(t *testing.T) {
	store, tokens, uc := newAuthFixture()
	signedUp, err := uc.SignUpUser(context.Background(), signUpRequest("ivan@example.com"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "wrong password", email: "ivan@example.com", password: "WrongPass1!", wantErr: commands.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: testPassword, wantErr: commands.ErrInvalidCredentials},
		{name: "malformed email", email: "nobody", password: testPassword, wantErr: commands.ErrInvalidCredentials},
		{name: "empty password", email: "ivan@example.com", password: "", wantErr: commands.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.SignInUser(context.Background(), tt.email, tt.password)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("each sign-in revokes earlier tokens", func(t *testing.T) {
		first, err := uc.SignInUser(context.Background(), "ivan@example.com", testPassword)
		require.NoError(t, err)
		second, err := uc.SignInUser(context.Background(), "ivan@example.com", testPassword)
		require.NoError(t, err)

		assert.Equal(t, signedUp.SubjectID, first.SubjectID)
		assert.Equal(t, signedUp.SubjectID, second.SubjectID)
		n := len(tokens.issued)
		assert.Equal(t, tokens.issued[n-2].version+1, tokens.issued[n-1].version)
		assert.Equal(t, store.versions[signedUp.SubjectID], tokens.issued[n-1].version)
	})
}

func TestBusinessAuth(t *testing.T) {
	store, tokens, uc := newAuthFixture()
	req := commands.SignUpBusinessRequest{Name: "Acme Corporation", Email: "acme@example.com", Password: testPassword}

	res, err := uc.SignUpBusiness(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, user.RoleBusiness, tokens.issued[0].role)

	_, err = uc.SignUpBusiness(context.Background(), req)
	assert.True(t, errs.Is(err, commands.ErrEmailTaken))

	_, err = uc.SignUpBusiness(context.Background(), commands.SignUpBusinessRequest{
		Name: "Acme", Email: "short@example.com", Password: testPassword,
	})
	assert.True(t, errs.Is(err, business.ErrInvalidName))

	signedIn, err := uc.SignInBusiness(context.Background(), "acme@example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, res.SubjectID, signedIn.SubjectID)
	assert.Equal(t, int64(1), store.versions[res.SubjectID])

	_, err = uc.SignInBusiness(context.Background(), "acme@example.com", "WrongPass1!")
	assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))

	// a user account with the same email is a different principal
	_, err = uc.SignInUser(context.Background(), "acme@example.com", testPassword)
	assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
}

func TestTokenGenerationFailure(t *testing.T) {
	_, tokens, uc := newAuthFixture()
	tokens.err = errors.New("signing key unavailable")

	_, err := uc.SignUpUser(context.Background(), signUpRequest("ivan@example.com"))

	assert.True(t, errs.Is(err, commands.ErrTokenGeneration))
}

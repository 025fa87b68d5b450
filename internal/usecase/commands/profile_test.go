//go:build unit

package commands_test

import (
	"context"
	"testing"

	"promocode-service/internal/domain/user"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/pkg/password"
	"promocode-service/internal/usecase/commands"
	"promocode-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name    string
		req     commands.UpdateProfileRequest
		check   func(t *testing.T, before, after *user.User)
		wantErr error
	}{
		{
			name: "name and surname",
			req:  commands.UpdateProfileRequest{Name: ptr("Pyotr"), Surname: ptr("Ivanov")},
			check: func(t *testing.T, before, after *user.User) {
				assert.Equal(t, "Pyotr", after.Name())
				assert.Equal(t, "Ivanov", after.Surname())
				assert.Equal(t, before.PasswordHash(), after.PasswordHash())
			},
		},
		{
			name: "avatar",
			req:  commands.UpdateProfileRequest{AvatarURL: ptr("https://cdn.example.com/a.png")},
			check: func(t *testing.T, _, after *user.User) {
				require.NotNil(t, after.AvatarURL())
				assert.Equal(t, "https://cdn.example.com/a.png", *after.AvatarURL())
			},
		},
		{
			name: "password",
			req:  commands.UpdateProfileRequest{Password: ptr("NewStrong2@")},
			check: func(t *testing.T, _, after *user.User) {
				assert.NoError(t, password.ComparePassword(after.PasswordHash(), "NewStrong2@"))
			},
		},
		{
			name: "empty request keeps profile",
			req:  commands.UpdateProfileRequest{},
			check: func(t *testing.T, before, after *user.User) {
				assert.Equal(t, before.Name(), after.Name())
			},
		},
		{
			name:    "weak password",
			req:     commands.UpdateProfileRequest{Password: ptr("weak")},
			wantErr: user.ErrPasswordTooWeak,
		},
		{
			name:    "blank name",
			req:     commands.UpdateProfileRequest{Name: ptr("   ")},
			wantErr: user.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			before := store.addUser(builder.NewUserBuilder().BuildStored())
			uc := commands.NewProfileCommands(store)

			err := uc.UpdateProfile(context.Background(), before.ID(), tt.req)

			after := store.users[before.ID()]
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Same(t, before, after)
				return
			}
			require.NoError(t, err)
			tt.check(t, before, after)
		})
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	uc := commands.NewProfileCommands(newMemStore())

	err := uc.UpdateProfile(context.Background(), uuid.New(), commands.UpdateProfileRequest{Name: ptr("Pyotr")})

	assert.True(t, errs.Is(err, commands.ErrUserNotFound))
}

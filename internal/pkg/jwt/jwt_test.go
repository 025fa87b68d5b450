//go:build unit

package jwt

import (
	"testing"
	"time"

	"promocode-service/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-signing-tokens"

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService(testSecret, time.Hour)
	subject := uuid.New()

	token, err := svc.GenerateToken(subject, user.RoleBusiness, 7)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.SubjectID)
	assert.Equal(t, "business", claims.Role)
	assert.Equal(t, int64(7), claims.TokenVersion)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestValidateTokenErrors(t *testing.T) {
	svc := NewService(testSecret, time.Hour)
	subject := uuid.New()

	expired := NewService(testSecret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken(subject, user.RoleUser, 0)
	require.NoError(t, err)

	otherKey, err := NewService("another-secret", time.Hour).GenerateToken(subject, user.RoleUser, 0)
	require.NoError(t, err)

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{SubjectID: subject, Role: "user"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expiredToken, wantErr: ErrExpiredToken},
		{name: "signed with another key", token: otherKey, wantErr: ErrInvalidToken},
		{name: "unsigned", token: none, wantErr: ErrInvalidToken},
		{name: "garbage", token: "not.a.token", wantErr: ErrInvalidToken},
		{name: "empty", token: "", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

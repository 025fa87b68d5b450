//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"promocode-service/internal/domain/user"
	"promocode-service/internal/pkg/config"
	"promocode-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subjectID uuid.UUID, role user.Role, tokenVersion int64) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(subjectID, role, tokenVersion)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subjectID uuid.UUID, role user.Role, tokenVersion int64) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond)
	token, err := service.GenerateToken(subjectID, role, tokenVersion)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

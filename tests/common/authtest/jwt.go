//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateAdminToken("admin")
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredAdminToken(t *testing.T) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond)
	token, err := service.GenerateAdminToken("admin")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// ForeignToken is signed with another secret.
func (h *JWTHelper) ForeignToken(t *testing.T) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-other", h.cfg.Duration)
	token, err := service.GenerateAdminToken("admin")
	require.NoError(t, err)
	return token
}

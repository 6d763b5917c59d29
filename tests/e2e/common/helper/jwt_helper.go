//go:build e2e

package helper

import (
	"testing"
	"time"

	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a bearer token for the given holder the same way the
// external auth collaborator would.
func IssueToken(t *testing.T, cfg config.JWTConfig, holderID uuid.UUID) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	service := jwt.NewService(cfg.Secret, duration)
	token, err := service.Issue(holderID)
	require.NoError(t, err)
	return token
}

func IssueExpiredToken(t *testing.T, cfg config.JWTConfig, holderID uuid.UUID) string {
	t.Helper()

	service := jwt.NewService(cfg.Secret, 1*time.Millisecond)
	token, err := service.Issue(holderID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	holderID := uuid.New()

	token, err := service.Issue(holderID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, holderID, parsed)
}

func TestVerifyExpiredToken(t *testing.T) {
	service := jwt.NewService("test-secret", -time.Minute)

	token, err := service.Issue(uuid.New())
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := jwt.NewService("secret-a", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = jwt.NewService("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerifyGarbageToken(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)

	_, err := service.Verify("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gezerm85/GymPara-Backend/utils"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, err := svc.Register("Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.True(t, utils.CheckPasswordHash("s3cret", user.Password))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register("Imposter", "ada@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginIssuesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	registered, err := svc.Register("Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	token, user, err := svc.Login("ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

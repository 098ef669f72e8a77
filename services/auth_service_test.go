package services

import (
	"testing"

	"github.com/devtrack-simple/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	user, err := Register(dto.RegisterRequest{
		Email:    "dev@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter22", user.Password) // stored hashed

	resp, err := Login(dto.LoginRequest{Email: "dev@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.Password)

	claims, err := ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "dev@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Register(dto.RegisterRequest{Email: "dev@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = Login(dto.LoginRequest{Email: "dev@example.com", Password: "wrong"})
	assert.EqualError(t, err, "invalid email or password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	_, err := Register(dto.RegisterRequest{Email: "dev@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = Register(dto.RegisterRequest{Email: "dev@example.com", Password: "other"})
	assert.EqualError(t, err, "email already registered")
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

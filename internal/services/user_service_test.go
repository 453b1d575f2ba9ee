package services

import (
	"net/http"
	"testing"
	"time"

	"devconnector_backend/internal/auth"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "unit-test-secret"

func newUserFixture() (UserService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	return NewUserService(userRepo, testJWTSecret, time.Hour), userRepo
}

func TestRegister_ReturnsValidToken(t *testing.T) {
	svc, userRepo := newUserFixture()

	resp, err := svc.Register(&dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, err := auth.ParseToken(resp.Token, testJWTSecret)
	require.NoError(t, err)

	user, err := userRepo.FindByID(userID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	// stored hash, never the plaintext
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("secret123", user.PasswordHash))
	assert.Equal(t, auth.GravatarURL("jane@example.com"), user.Avatar)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "Jane", Email: "dupe@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		Name: "Impostor", Email: "dupe@example.com", Password: "other456",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, "User already exists", appErr.Message)
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	// wrong password and unknown email fail identically
	for _, req := range []*dto.LoginRequest{
		{Email: "jane@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret123"},
	} {
		_, err := svc.Login(req)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	}
}

func TestCurrentUser_OmitsPasswordHash(t *testing.T) {
	svc, userRepo := newUserFixture()

	resp, err := svc.Register(&dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	userID, err := auth.ParseToken(resp.Token, testJWTSecret)
	require.NoError(t, err)

	current, err := svc.CurrentUser(userID)
	require.NoError(t, err)
	assert.Equal(t, userRepo.users[userID].Name, current.Name)
	assert.Equal(t, "jane@example.com", current.Email)
}

package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/pkg/apperr"
	"github.com/exclusiveng/360urban-backendmysql/repository"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(userRepo, newTestConfig()), userRepo
}

func TestRegister(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Register("Agent@Example.com", "Str0ng&Pass", "Ada", "Obi", "08030000000")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	// email normalized, role defaulted, hash never exposed
	assert.Equal(t, "agent@example.com", result.User["email"])
	assert.Equal(t, entity.RoleAgent, result.User["role"])
	assert.NotContains(t, result.User, "password")
	assert.NotContains(t, result.User, "refreshToken")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("agent@example.com", "Str0ng&Pass", "Ada", "Obi", "")
	require.NoError(t, err)

	_, err = svc.Register("agent@example.com", "Str0ng&Pass", "Ada", "Obi", "")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Status)
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("not-an-email", "Str0ng&Pass", "Ada", "Obi", "")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestRegister_WeakPasswordReportsEveryRule(t *testing.T) {
	svc, _ := newAuthService(t)

	// short, no uppercase, no digit, no special char
	_, err := svc.Register("agent@example.com", "abc", "Ada", "Obi", "")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Len(t, appErr.Fields["password"], 4)
}

func TestLogin_NoUserEnumeration(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("agent@example.com", "Str0ng&Pass", "Ada", "Obi", "")
	require.NoError(t, err)

	_, wrongPass := svc.Login("agent@example.com", "bad-password")
	_, unknownUser := svc.Login("nobody@example.com", "bad-password")

	var e1, e2 *apperr.Error
	require.ErrorAs(t, wrongPass, &e1)
	require.ErrorAs(t, unknownUser, &e2)
	assert.Equal(t, http.StatusUnauthorized, e1.Status)
	assert.Equal(t, http.StatusUnauthorized, e2.Status)
	// identical message, no existence leak
	assert.Equal(t, e1.Message, e2.Message)
}

func TestRefreshAccessToken_SingleActiveTokenPolicy(t *testing.T) {
	svc, _ := newAuthService(t)

	reg, err := svc.Register("agent@example.com", "Str0ng&Pass", "Ada", "Obi", "")
	require.NoError(t, err)

	// refresh does not rotate the refresh token, reuse still works
	access, err := svc.RefreshAccessToken(reg.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	_, err = svc.RefreshAccessToken(reg.RefreshToken)
	require.NoError(t, err)

	// a new login supersedes the stored token; even issued within the same
	// second the two tokens must differ, or the mismatch check cannot bite
	login, err := svc.Login("agent@example.com", "Str0ng&Pass")
	require.NoError(t, err)
	require.NotEqual(t, reg.RefreshToken, login.RefreshToken)

	_, err = svc.RefreshAccessToken(reg.RefreshToken)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)

	_, err = svc.RefreshAccessToken(login.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshAccessToken_RejectsGarbage(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.RefreshAccessToken("not-a-token")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestLogout(t *testing.T) {
	svc, userRepo := newAuthService(t)

	reg, err := svc.Register("agent@example.com", "Str0ng&Pass", "Ada", "Obi", "")
	require.NoError(t, err)

	userID := reg.User["id"].(string)
	require.NoError(t, svc.Logout(userID))

	user, err := userRepo.FindByID(userID)
	require.NoError(t, err)
	assert.Nil(t, user.RefreshToken)

	// the cleared token no longer refreshes
	_, err = svc.RefreshAccessToken(reg.RefreshToken)
	assert.Error(t, err)

	// idempotent, unknown user included
	assert.NoError(t, svc.Logout(userID))
	assert.NoError(t, svc.Logout("missing-user"))
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)

	reg, err := svc.Register("agent@example.com", "Str0ng&Pass", "Ada", "Obi", "")
	require.NoError(t, err)
	userID := reg.User["id"].(string)

	var appErr *apperr.Error

	err = svc.ChangePassword(userID, "wrong-old", "An0ther&Pass")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)

	err = svc.ChangePassword(userID, "Str0ng&Pass", "weak")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.NotEmpty(t, appErr.Fields["newPassword"])

	require.NoError(t, svc.ChangePassword(userID, "Str0ng&Pass", "An0ther&Pass"))

	_, err = svc.Login("agent@example.com", "Str0ng&Pass")
	assert.Error(t, err)
	_, err = svc.Login("agent@example.com", "An0ther&Pass")
	assert.NoError(t, err)
}

func TestChangePassword_UnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	err := svc.ChangePassword("missing", "a", "An0ther&Pass")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

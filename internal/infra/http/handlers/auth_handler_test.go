package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/permitwatch/lead-portal/internal/auth"
	"github.com/permitwatch/lead-portal/internal/entity"
)

func adminFixture() *entity.AdminUser {
	return &entity.AdminUser{
		ID:       "admin-1",
		Email:    "admin@gmail.com",
		Password: auth.HashPassword("12345678"),
		Role:     "admin",
	}
}

func TestLoginSuccessReturnsTokenAndSummary(t *testing.T) {
	deps := newTestDeps()
	deps.Users.On("FindByEmail", mock.Anything, "admin@gmail.com").Return(adminFixture(), nil)
	router := deps.router()

	w := postJSON(t, router, "/auth/login", map[string]string{
		"email":    "Admin@Gmail.com", // matched lowercased
		"password": "12345678",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "admin-1", user["id"])
	assert.Equal(t, "admin@gmail.com", user["email"])
	assert.Equal(t, "admin", user["role"])
	assert.NotContains(t, user, "password")
}

func TestLoginWrongPasswordReturns401(t *testing.T) {
	deps := newTestDeps()
	deps.Users.On("FindByEmail", mock.Anything, "admin@gmail.com").Return(adminFixture(), nil)
	router := deps.router()

	w := postJSON(t, router, "/auth/login", map[string]string{
		"email":    "admin@gmail.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestLoginUnknownEmailReturnsSame401(t *testing.T) {
	deps := newTestDeps()
	deps.Users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, entity.ErrNotFound)
	router := deps.router()

	w := postJSON(t, router, "/auth/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestLoginMissingFieldsReturns400(t *testing.T) {
	deps := newTestDeps()
	router := deps.router()

	w := postJSON(t, router, "/auth/login", map[string]string{"email": "admin@gmail.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password are required", decodeBody(t, w)["error"])
}

func TestVerifyWithoutTokenReturns401(t *testing.T) {
	deps := newTestDeps()
	router := deps.router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/auth/verify", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided", decodeBody(t, w)["error"])
}

func TestVerifyValidTokenReturnsUser(t *testing.T) {
	deps := newTestDeps()
	deps.Users.On("FindByID", mock.Anything, "admin-1").Return(adminFixture(), nil)
	router := deps.router()

	token, err := deps.Tokens.Issue(entity.UserSummary{ID: "admin-1", Email: "admin@gmail.com", Role: "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, "admin@gmail.com", user["email"])
}

func TestVerifyExpiredTokenFailsEvenIfUserExists(t *testing.T) {
	deps := newTestDeps()
	deps.Users.On("FindByID", mock.Anything, "admin-1").Return(adminFixture(), nil)
	router := deps.router()

	expired := auth.NewTokenManager("test-secret", -time.Hour)
	token, err := expired.Issue(entity.UserSummary{ID: "admin-1", Email: "admin@gmail.com", Role: "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, w)["error"])
	deps.Users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestVerifyForgedTokenRejected(t *testing.T) {
	deps := newTestDeps()
	router := deps.router()

	// A token signed with a different secret must not pass, unlike the old
	// unsigned base64 scheme.
	forger := auth.NewTokenManager("attacker-secret", 24*time.Hour)
	token, err := forger.Issue(entity.UserSummary{ID: "admin-1", Email: "admin@gmail.com", Role: "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, w)["error"])
}

func TestVerifyDeletedUserReturns401(t *testing.T) {
	deps := newTestDeps()
	deps.Users.On("FindByID", mock.Anything, "admin-1").Return(nil, entity.ErrNotFound)
	router := deps.router()

	token, err := deps.Tokens.Issue(entity.UserSummary{ID: "admin-1", Email: "admin@gmail.com", Role: "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmsight/server/internal/api/testutils"
	"github.com/farmsight/server/internal/models"
)

func TestRegister(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/register", models.RegisterRequest{
		Name:     "New User",
		Email:    "newuser@example.com",
		Password: "Password123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, 86400, resp.ExpiresIn)
	assert.Equal(t, "newuser@example.com", resp.User.Email)

	// Duplicate email conflicts.
	w = testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/register", models.RegisterRequest{
		Name:     "Other User",
		Email:    "newuser@example.com",
		Password: "Password456",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Short password fails validation.
	w = testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/register", models.RegisterRequest{
		Name:     "Weak",
		Email:    "weak@example.com",
		Password: "short",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/login", models.LoginRequest{
		Email:    "testuser@example.com",
		Password: "testpassword123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// Wrong password and unknown email return identical bodies.
	wrongPw := testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/login", models.LoginRequest{
		Email:    "testuser@example.com",
		Password: "wrongpassword",
	}, nil)
	unknown := testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/login", models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "testpassword123",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestRefreshToken(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/login", models.LoginRequest{
		Email:    "testuser@example.com",
		Password: "testpassword123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var login models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/refresh", models.RefreshRequest{
		RefreshToken: login.RefreshToken,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var refreshed models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.NotEmpty(t, refreshed.Token)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// An access token is not accepted as a refresh token.
	w = testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/refresh", models.RefreshRequest{
		RefreshToken: login.Token,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutils.PerformRequest(testCtx.Router, "POST", "/api/auth/refresh", models.RefreshRequest{
		RefreshToken: "garbage",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	w := testutils.PerformRequest(testCtx.Router, "GET", "/api/farms", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutils.PerformRequest(testCtx.Router, "GET", "/api/farms", nil, map[string]string{
		"Authorization": "Basic abc123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutils.PerformRequest(testCtx.Router, "GET", "/api/farms", nil, testutils.AuthHeaders("bad-token"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

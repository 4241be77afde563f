package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/farmsight/server/internal/api"
	"github.com/farmsight/server/internal/config"
	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/repository"
	"github.com/farmsight/server/internal/service"
)

// FakeCompleter returns a canned assistant reply and records the last prompt.
type FakeCompleter struct {
	Reply      string
	Err        error
	LastPrompt string
}

func (f *FakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.LastPrompt = prompt
	return f.Reply, f.Err
}

// FakeDetector returns canned pest predictions.
type FakeDetector struct {
	Predictions []map[string]interface{}
	Err         error
}

func (f *FakeDetector) Detect(context.Context, string, io.Reader) ([]map[string]interface{}, error) {
	return f.Predictions, f.Err
}

// TestContext holds all dependencies for API tests.
type TestContext struct {
	Router    *gin.Engine
	Repo      repository.Repository
	Service   service.Service
	DB        *sqlx.DB
	Completer *FakeCompleter
	Detector  *FakeDetector
	UserID    string
	UserToken string
}

// SetupTestContext initializes the stack against the test database and
// registers a test user.
func SetupTestContext(t *testing.T) *TestContext {
	cfg, err := config.Load()
	require.NoError(t, err, "Failed to load test configuration")

	if cfg.Database.TestDBName != "" {
		cfg.Database.DBName = cfg.Database.TestDBName
	} else {
		cfg.Database.DBName = "farmsight_test"
	}

	db, err := config.SetupDatabase(cfg)
	require.NoError(t, err, "Failed to set up test database")

	repo := repository.NewPostgresRepository(db)

	completer := &FakeCompleter{Reply: "Water your crops in the morning."}
	detector := &FakeDetector{Predictions: []map[string]interface{}{}}

	svc := service.NewDefaultService(repo, completer, zap.NewNop(), service.Options{
		AccessSecret:      "test-access-secret",
		RefreshSecret:     "test-refresh-secret",
		AccessExpiration:  24 * time.Hour,
		RefreshExpiration: 7 * 24 * time.Hour,
		BcryptCost:        4,
	})

	handler := api.NewHandler(svc, detector, zap.NewNop())

	gin.SetMode(gin.TestMode)
	api.SetupValidator()
	router := gin.New()
	handler.SetupRoutes(router)

	tc := &TestContext{
		Router:    router,
		Repo:      repo,
		Service:   svc,
		DB:        repo.GetDB(),
		Completer: completer,
		Detector:  detector,
	}
	tc.truncateAll(t)
	tc.UserID, tc.UserToken = tc.RegisterUser(t, "testuser@example.com", "Test User")

	return tc
}

// CleanupTestContext releases test resources.
func CleanupTestContext(tc *TestContext) {
	if tc.DB != nil {
		tc.DB.Close()
	}
}

// RegisterUser creates an account through the API and returns its id and
// access token.
func (tc *TestContext) RegisterUser(t *testing.T, email, name string) (string, string) {
	w := PerformRequest(tc.Router, "POST", "/api/auth/register", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "testpassword123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, "Failed to register test user: %s", w.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.User.ID, resp.Token
}

func (tc *TestContext) truncateAll(t *testing.T) {
	tables := []string{
		"chat_messages", "activity_items", "activities",
		"inventory_item_farms", "inventory_items", "suppliers", "farms", "users",
	}
	for _, table := range tables {
		_, err := tc.DB.Exec("DELETE FROM " + table)
		require.NoError(t, err, "Failed to clean table %s", table)
	}
}

// PerformRequest executes an HTTP request against the router.
func PerformRequest(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer

	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// PerformUpload executes a multipart upload with a single file field.
func PerformUpload(r http.Handler, path, field, filename string, content []byte, headers map[string]string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile(field, filename)
	part.Write(content)
	writer.Close()

	req, _ := http.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// AuthHeaders returns headers with a bearer token.
func AuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
}

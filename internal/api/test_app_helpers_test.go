package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/kalori/internal/db"
	"github.com/terraincognita07/kalori/internal/i18n"
	"github.com/terraincognita07/kalori/internal/identity"
	"github.com/terraincognita07/kalori/internal/models"
	"github.com/terraincognita07/kalori/internal/services"
	"gorm.io/gorm"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *testClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *testClock) Advance(duration time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(duration)
}

func (clock *testClock) Set(value time.Time) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = value
}

type stubAnalyzer struct {
	analysis  models.FoodAnalysis
	err       error
	lastImage string
}

func (analyzer *stubAnalyzer) Analyze(_ context.Context, imageBase64 string) (models.FoodAnalysis, error) {
	analyzer.lastImage = imageBase64
	return analyzer.analysis, analyzer.err
}

// fakeIdentityProvider serves the session-data endpoint for registered session ids.
type fakeIdentityProvider struct {
	mu       sync.Mutex
	sessions map[string]identity.SessionData
	server   *httptest.Server
}

func newFakeIdentityProvider(t *testing.T) *fakeIdentityProvider {
	t.Helper()

	provider := &fakeIdentityProvider{sessions: map[string]identity.SessionData{}}
	provider.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider.mu.Lock()
		data, ok := provider.sessions[r.Header.Get(identity.SessionIDHeader)]
		provider.mu.Unlock()
		if !ok {
			http.Error(w, `{"detail":"invalid session"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(data)
	}))
	t.Cleanup(provider.server.Close)
	return provider
}

func (provider *fakeIdentityProvider) register(sessionID string, data identity.SessionData) {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	provider.sessions[sessionID] = data
}

type testEnv struct {
	app      *fiber.App
	database *gorm.DB
	clock    *testClock
	analyzer *stubAnalyzer
	identity *fakeIdentityProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithCookieSecure(t, false)
}

func newTestEnvWithCookieSecure(t *testing.T, cookieSecure bool) *testEnv {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "kalori-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	languages, err := i18n.NewManager("tr")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	clock := &testClock{now: time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)}
	provider := newFakeIdentityProvider(t)
	analyzer := &stubAnalyzer{}
	repos := db.NewRepositories(database)

	diets := services.NewDietService(repos.Diets, clock)
	if _, err := diets.SeedDefaultCatalog(); err != nil {
		t.Fatalf("seed diet catalog: %v", err)
	}

	handler, err := NewHandler(Dependencies{
		Auth:      services.NewAuthService(repos.Users, repos.Sessions, identity.NewClient(provider.server.URL, 5*time.Second), clock),
		Profile:   services.NewProfileService(repos.Users),
		Nutrition: services.NewNutritionService(repos.Meals, nil, languages, clock, nil),
		Water:     services.NewWaterService(repos.WaterLogs, clock),
		Steps:     services.NewStepService(repos.StepLogs, clock),
		Vitamins:  services.NewVitaminService(repos.Vitamins, languages, clock),
		Diets:     diets,
		Premium:   services.NewPremiumService(repos.Users, clock),
		Analyzer:  analyzer,
		Languages: languages,
		Clock:     clock,
	}, cookieSecure, 5*time.Second)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)

	return &testEnv{
		app:      app,
		database: database,
		clock:    clock,
		analyzer: analyzer,
		identity: provider,
	}
}

func (env *testEnv) request(t *testing.T, method string, path string, token string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

// signIn registers a provider session and exchanges it, returning the local session token.
func (env *testEnv) signIn(t *testing.T, email string) string {
	t.Helper()

	sessionID := "sid-" + email
	token := "token-" + email
	env.identity.register(sessionID, identity.SessionData{
		ID:           "provider-" + email,
		Email:        email,
		Name:         "Test " + email,
		SessionToken: token,
	})

	request := httptest.NewRequest(http.MethodPost, "/api/auth/session", nil)
	request.Header.Set(identity.SessionIDHeader, sessionID)
	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("exchange session: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected exchange status 200, got %d", response.StatusCode)
	}
	return token
}

func expectStatus(t *testing.T, response *http.Response, status int) {
	t.Helper()
	if response.StatusCode != status {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", status, response.StatusCode, string(body))
	}
}

func decodeJSON[T any](t *testing.T, response *http.Response) T {
	t.Helper()

	var value T
	if err := json.NewDecoder(response.Body).Decode(&value); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return value
}

func newJSONRequest(method string, path string, token string, body string) *http.Request {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

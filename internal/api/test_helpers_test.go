package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/granapp/grana/internal/db"
	"github.com/granapp/grana/internal/services"
)

type recordingMailer struct {
	mu       sync.Mutex
	lastCode int
}

func (mailer *recordingMailer) SendRecoveryCode(ctx context.Context, toEmail string, toName string, code int, expiresAt time.Time) error {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	mailer.lastCode = code
	return nil
}

func (mailer *recordingMailer) LastCode() int {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	return mailer.lastCode
}

type testFixture struct {
	repos  *db.Repositories
	mailer *recordingMailer
	issuer *services.TokenIssuer
}

func newTestApp(t *testing.T) (*fiber.App, *testFixture) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "grana-api-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	repos := db.NewRepositories(database)
	mailer := &recordingMailer{}
	issuer := services.NewTokenIssuer([]byte("test-secret-key"), nil)
	codes := services.NewRecoveryCodeGenerator(nil)

	authService := services.NewAuthService(
		repos.Users,
		repos.RefreshTokens,
		issuer,
		codes,
		mailer,
		nil,
		services.DefaultAccessTokenTTL,
		services.DefaultRefreshTokenTTL,
	)
	categoryService := services.NewCategoryService(repos.Categories, nil)
	transactionService := services.NewTransactionService(repos.Transactions, repos.Categories, nil)

	handler := NewHandler(authService, categoryService, transactionService, issuer)

	app := fiber.New()
	RegisterRoutes(app, handler)

	return app, &testFixture{repos: repos, mailer: mailer, issuer: issuer}
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, payload any, token string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

type authResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func registerTestUser(t *testing.T, app *fiber.App, name string, email string, password string) authResponse {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", response.StatusCode)
	}

	var result authResponse
	decodeJSON(t, response, &result)
	return result
}

package api

import (
	"net/http"
	"testing"
)

func TestRegisterLoginRecoveryEndToEnd(t *testing.T) {
	app, fixture := newTestApp(t)

	registered := registerTestUser(t, app, "Ana", "ana@x.com", "Secret123")
	if registered.AccessToken == "" || registered.RefreshToken == "" {
		t.Fatalf("expected both tokens in register response")
	}
	if registered.User.Name != "Ana" {
		t.Fatalf("expected user name Ana, got %q", registered.User.Name)
	}

	// Wrong password collapses to invalid credentials.
	response := performJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ana@x.com",
		"password": "wrong",
	}, "")
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for wrong password, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSON(t, app, http.MethodPost, "/api/auth/recover", map[string]string{
		"email": "ana@x.com",
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for recover, got %d", response.StatusCode)
	}
	response.Body.Close()

	code := fixture.mailer.LastCode()
	if code < 100000 || code > 999999 {
		t.Fatalf("expected a persisted 6-digit code, got %d", code)
	}

	wrongCode := 100000
	if wrongCode == code {
		wrongCode = 100001
	}
	response = performJSON(t, app, http.MethodPost, "/api/auth/recover/verify", map[string]any{
		"email": "ana@x.com",
		"code":  wrongCode,
	}, "")
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for wrong code, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSON(t, app, http.MethodPost, "/api/auth/recover/verify", map[string]any{
		"email": "ana@x.com",
		"code":  code,
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for correct code, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSON(t, app, http.MethodPost, "/api/auth/recover/reset", map[string]any{
		"email":       "ana@x.com",
		"code":        code,
		"newPassword": "Fresh456pass",
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for reset, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ana@x.com",
		"password": "Fresh456pass",
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for login with new password, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app, _ := newTestApp(t)

	registerTestUser(t, app, "Ana", "ana@x.com", "Secret123")

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Another",
		"email":    "ana@x.com",
		"password": "Another123",
	}, "")
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409 for duplicate email, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "weak",
	}, "")
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for weak password, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestRecoverUnknownEmail(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/auth/recover", map[string]string{
		"email": "nobody@x.com",
	}, "")
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown user, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestRecoverRateLimited(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "Ana", "ana@x.com", "Secret123")

	status := 0
	for attempt := 0; attempt < 10; attempt++ {
		response := performJSON(t, app, http.MethodPost, "/api/auth/recover", map[string]string{
			"email": "ana@x.com",
		}, "")
		status = response.StatusCode
		response.Body.Close()
	}
	if status != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 after repeated recovery requests, got %d", status)
	}
}

func TestRefreshRotationOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	registered := registerTestUser(t, app, "Ana", "ana@x.com", "Secret123")

	response := performJSON(t, app, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refreshToken": registered.RefreshToken,
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for refresh, got %d", response.StatusCode)
	}
	var refreshed authResponse
	decodeJSON(t, response, &refreshed)
	if refreshed.RefreshToken == registered.RefreshToken {
		t.Fatalf("expected a rotated refresh token")
	}

	// The consumed token no longer refreshes.
	response = performJSON(t, app, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refreshToken": registered.RefreshToken,
	}, "")
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for reused refresh token, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestProtectedRoutesRequireBearerToken(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodGet, "/api/users/me", nil, "")
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSON(t, app, http.MethodGet, "/api/users/me", nil, "garbage-token")
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 with malformed token, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestGetAndUpdateCurrentUser(t *testing.T) {
	app, _ := newTestApp(t)
	registered := registerTestUser(t, app, "Ana", "ana@x.com", "Secret123")

	response := performJSON(t, app, http.MethodGet, "/api/users/me", nil, registered.AccessToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for get user, got %d", response.StatusCode)
	}
	var fetched struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	decodeJSON(t, response, &fetched)
	if fetched.Name != "Ana" || fetched.Email != "ana@x.com" {
		t.Fatalf("unexpected user payload: %+v", fetched)
	}

	response = performJSON(t, app, http.MethodPatch, "/api/users/me", map[string]string{
		"name": "Ana Maria",
	}, registered.AccessToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for update user, got %d", response.StatusCode)
	}
	decodeJSON(t, response, &fetched)
	if fetched.Name != "Ana Maria" {
		t.Fatalf("expected updated name, got %q", fetched.Name)
	}
}

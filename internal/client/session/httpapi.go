package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPAPI talks to the Grana server's JSON auth endpoints.
type HTTPAPI struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAPI(baseURL string, client *http.Client) *HTTPAPI {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (api *HTTPAPI) Login(ctx context.Context, email string, password string) (AuthResult, error) {
	return api.postAuth(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (api *HTTPAPI) Register(ctx context.Context, name string, email string, password string) (AuthResult, error) {
	return api.postAuth(ctx, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

func (api *HTTPAPI) postAuth(ctx context.Context, path string, payload map[string]string) (AuthResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return AuthResult{}, fmt.Errorf("encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, api.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return AuthResult{}, fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := api.client.Do(request)
	if err != nil {
		return AuthResult{}, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&failure); err == nil && failure.Error != "" {
			return AuthResult{}, fmt.Errorf("server rejected request: %s", failure.Error)
		}
		return AuthResult{}, fmt.Errorf("server rejected request: status %d", response.StatusCode)
	}

	var result AuthResult
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return AuthResult{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

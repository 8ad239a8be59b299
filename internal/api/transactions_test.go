package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type transactionResponse struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"categoryId"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
}

func createCategoryForTest(t *testing.T, app *fiber.App, token string, title string) categoryResponse {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/categories", map[string]string{
		"title": title,
	}, token)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 for create category, got %d", response.StatusCode)
	}
	var created categoryResponse
	decodeJSON(t, response, &created)
	return created
}

func TestTransactionCRUD(t *testing.T) {
	app, _ := newTestApp(t)
	registered := registerTestUser(t, app, "Ana", "ana@x.com", "Secret123")
	category := createCategoryForTest(t, app, registered.AccessToken, "Groceries")

	response := performJSON(t, app, http.MethodPost, "/api/transactions", map[string]any{
		"categoryId":  category.ID,
		"description": "Weekly shop",
		"type":        "expense",
		"value":       125.40,
		"date":        "2025-06-01T00:00:00Z",
	}, registered.AccessToken)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 for create transaction, got %d", response.StatusCode)
	}
	var created transactionResponse
	decodeJSON(t, response, &created)
	if created.ID == "" || created.Type != "expense" || created.Value != 125.40 {
		t.Fatalf("unexpected created transaction: %+v", created)
	}

	response = performJSON(t, app, http.MethodPut, "/api/transactions/"+created.ID, map[string]any{
		"categoryId":  category.ID,
		"description": "Weekly groceries",
		"type":        "expense",
		"value":       130.00,
		"date":        "2025-06-01T00:00:00Z",
	}, registered.AccessToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for update transaction, got %d", response.StatusCode)
	}
	var updated transactionResponse
	decodeJSON(t, response, &updated)
	if updated.Description != "Weekly groceries" || updated.Value != 130.00 {
		t.Fatalf("unexpected updated transaction: %+v", updated)
	}

	response = performJSON(t, app, http.MethodDelete, "/api/transactions/"+created.ID, nil, registered.AccessToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for delete transaction, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSON(t, app, http.MethodGet, "/api/transactions", nil, registered.AccessToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for list transactions, got %d", response.StatusCode)
	}
	var listed []transactionResponse
	decodeJSON(t, response, &listed)
	if len(listed) != 0 {
		t.Fatalf("expected empty list after delete, got %d entries", len(listed))
	}
}

func TestTransactionRejectsForeignCategory(t *testing.T) {
	app, _ := newTestApp(t)
	owner := registerTestUser(t, app, "Ana", "ana@x.com", "Secret123")
	intruder := registerTestUser(t, app, "Bia", "bia@x.com", "Secret123")
	category := createCategoryForTest(t, app, owner.AccessToken, "Groceries")

	response := performJSON(t, app, http.MethodPost, "/api/transactions", map[string]any{
		"categoryId":  category.ID,
		"description": "Sneaky",
		"type":        "expense",
		"value":       10.0,
		"date":        "2025-06-01T00:00:00Z",
	}, intruder.AccessToken)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign category, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestTransactionValidation(t *testing.T) {
	app, _ := newTestApp(t)
	registered := registerTestUser(t, app, "Ana", "ana@x.com", "Secret123")
	category := createCategoryForTest(t, app, registered.AccessToken, "Groceries")

	cases := []map[string]any{
		{"categoryId": "", "description": "x", "type": "expense", "value": 1.0, "date": "2025-06-01T00:00:00Z"},
		{"categoryId": category.ID, "description": "", "type": "expense", "value": 1.0, "date": "2025-06-01T00:00:00Z"},
		{"categoryId": category.ID, "description": "x", "type": "transfer", "value": 1.0, "date": "2025-06-01T00:00:00Z"},
		{"categoryId": category.ID, "description": "x", "type": "expense", "value": -1.0, "date": "2025-06-01T00:00:00Z"},
	}
	for index, payload := range cases {
		response := performJSON(t, app, http.MethodPost, "/api/transactions", payload, registered.AccessToken)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: expected status 400, got %d", index, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestSummaryAggregatesByType(t *testing.T) {
	app, _ := newTestApp(t)
	registered := registerTestUser(t, app, "Ana", "ana@x.com", "Secret123")
	salary := createCategoryForTest(t, app, registered.AccessToken, "Salary")
	groceries := createCategoryForTest(t, app, registered.AccessToken, "Groceries")

	entries := []map[string]any{
		{"categoryId": salary.ID, "description": "Paycheck", "type": "income", "value": 3000.0, "date": "2025-06-01T00:00:00Z"},
		{"categoryId": groceries.ID, "description": "Weekly shop", "type": "expense", "value": 200.0, "date": "2025-06-02T00:00:00Z"},
		{"categoryId": groceries.ID, "description": "Top-up", "type": "expense", "value": 50.0, "date": "2025-06-03T00:00:00Z"},
	}
	for _, entry := range entries {
		response := performJSON(t, app, http.MethodPost, "/api/transactions", entry, registered.AccessToken)
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("expected status 201 for seed transaction, got %d", response.StatusCode)
		}
		response.Body.Close()
	}

	response := performJSON(t, app, http.MethodGet, "/api/summary?from=2025-06-01&to=2025-07-01", nil, registered.AccessToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for summary, got %d", response.StatusCode)
	}
	var summary struct {
		Income     float64 `json:"income"`
		Expense    float64 `json:"expense"`
		Balance    float64 `json:"balance"`
		ByCategory []struct {
			CategoryID string  `json:"categoryId"`
			Total      float64 `json:"total"`
		} `json:"byCategory"`
	}
	decodeJSON(t, response, &summary)

	if summary.Income != 3000.0 {
		t.Fatalf("expected income 3000, got %v", summary.Income)
	}
	if summary.Expense != 250.0 {
		t.Fatalf("expected expense 250, got %v", summary.Expense)
	}
	if summary.Balance != 2750.0 {
		t.Fatalf("expected balance 2750, got %v", summary.Balance)
	}
	if len(summary.ByCategory) != 2 {
		t.Fatalf("expected two category totals, got %d", len(summary.ByCategory))
	}

	// A window with no transactions yields zeros.
	response = performJSON(t, app, http.MethodGet, "/api/summary?from=2025-08-01&to=2025-09-01", nil, registered.AccessToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for empty summary, got %d", response.StatusCode)
	}
	decodeJSON(t, response, &summary)
	if summary.Income != 0 || summary.Expense != 0 || summary.Balance != 0 {
		t.Fatalf("expected zero totals, got %+v", summary)
	}
}

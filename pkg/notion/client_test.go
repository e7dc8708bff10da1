package notion

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/recipebuddy/notion-ingredient-client/internal/testutil"
)

func newTestClient(t *testing.T, mock *testutil.MockNotion, databaseID string) *Client {
	t.Helper()

	cfg := DefaultConfig("test-token", databaseID)
	cfg.BaseURL = mock.URL()

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid config",
			config:      DefaultConfig("secret-token", "db-1"),
			expectError: false,
		},
		{
			name:        "minimal config gets defaults",
			config:      Config{Token: "secret-token", DatabaseID: "db-1"},
			expectError: false,
		},
		{
			name:        "missing token",
			config:      Config{DatabaseID: "db-1"},
			expectError: true,
			errorMsg:    "token is required",
		},
		{
			name:        "missing database ID",
			config:      Config{Token: "secret-token"},
			expectError: true,
			errorMsg:    "database ID is required",
		},
		{
			name:        "page size too large",
			config:      Config{Token: "secret-token", DatabaseID: "db-1", PageSize: 500},
			expectError: true,
			errorMsg:    "page_size must be 1..100 (got 500)",
		},
		{
			name:        "negative page size",
			config:      Config{Token: "secret-token", DatabaseID: "db-1", PageSize: -1},
			expectError: true,
			errorMsg:    "page_size must be 1..100 (got -1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.config)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got nil")
					return
				}
				if tt.errorMsg != "" && err.Error() != tt.errorMsg {
					t.Errorf("Error message = %q, want %q", err.Error(), tt.errorMsg)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
					return
				}
				if client == nil {
					t.Error("Client is nil")
				}
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("secret-token", "db-1")

	if cfg.Token != "secret-token" {
		t.Errorf("Token = %q, want %q", cfg.Token, "secret-token")
	}
	if cfg.DatabaseID != "db-1" {
		t.Errorf("DatabaseID = %q, want %q", cfg.DatabaseID, "db-1")
	}
	if cfg.BaseURL != "https://api.notion.com/v1" {
		t.Errorf("BaseURL = %q, want the public API", cfg.BaseURL)
	}
	if cfg.NotionVersion != "2022-06-28" {
		t.Errorf("NotionVersion = %q, want 2022-06-28", cfg.NotionVersion)
	}
	if cfg.UserAgent != "notion-ingredient-client/0.1.0" {
		t.Errorf("UserAgent = %q, want notion-ingredient-client/0.1.0", cfg.UserAgent)
	}
	if cfg.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
}

func TestNew_FillsDefaults(t *testing.T) {
	client, err := New(Config{Token: "secret-token", DatabaseID: "db-1"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if client.config.BaseURL != "https://api.notion.com/v1" {
		t.Errorf("BaseURL = %q, want the public API", client.config.BaseURL)
	}
	if client.config.UserAgent != defaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", client.config.UserAgent, defaultUserAgent)
	}
	if client.config.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", client.config.PageSize)
	}
}

func TestQueryPage_RequestShape(t *testing.T) {
	mock := testutil.NewMockNotion()
	defer mock.Close()
	mock.SetQueryPages("db-1", []testutil.PageFixture{testutil.ChickenPage()})

	client := newTestClient(t, mock, "db-1")

	resp, err := client.QueryPage(context.Background(), "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(resp.Results) != 1 {
		t.Errorf("Results = %d records, want 1", len(resp.Results))
	}
	if resp.HasMore {
		t.Error("HasMore = true, want false")
	}
	if resp.NextCursor != nil {
		t.Errorf("NextCursor = %v, want nil", *resp.NextCursor)
	}

	if got := mock.LastRequestHeader.Get("Authorization"); got != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", got)
	}
	if got := mock.LastRequestHeader.Get("Notion-Version"); got != "2022-06-28" {
		t.Errorf("Notion-Version = %q, want 2022-06-28", got)
	}
	if got := mock.LastRequestHeader.Get("User-Agent"); got != "notion-ingredient-client/0.1.0" {
		t.Errorf("User-Agent = %q, want notion-ingredient-client/0.1.0", got)
	}
	if len(mock.Requests) != 1 || mock.Requests[0].PageSize != 100 {
		t.Errorf("Requests = %+v, want one request with page_size 100", mock.Requests)
	}
	if mock.Requests[0].StartCursor != "" {
		t.Errorf("StartCursor = %q, want empty for first page", mock.Requests[0].StartCursor)
	}
}

func TestQueryPage_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantClass  ErrorClass
	}{
		{"unauthorized", http.StatusUnauthorized, ErrorClassClient},
		{"not found", http.StatusNotFound, ErrorClassClient},
		{"rate limited", http.StatusTooManyRequests, ErrorClassRateLimit},
		{"server error", http.StatusInternalServerError, ErrorClassServer},
		{"bad gateway", http.StatusBadGateway, ErrorClassServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockNotion()
			defer mock.Close()
			mock.SetError("db-1", tt.statusCode)

			client := newTestClient(t, mock, "db-1")

			_, err := client.QueryPage(context.Background(), "")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected APIError, got %v", err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if apiErr.ErrorClass != tt.wantClass {
				t.Errorf("ErrorClass = %q, want %q", apiErr.ErrorClass, tt.wantClass)
			}

			// A failed query is never retried by this layer.
			if mock.GetRequestCount() != 1 {
				t.Errorf("RequestCount = %d, want 1", mock.GetRequestCount())
			}
		})
	}
}

func TestQueryPage_NetworkError(t *testing.T) {
	mock := testutil.NewMockNotion()
	url := mock.URL()
	mock.Close() // connection refused from here on

	cfg := DefaultConfig("test-token", "db-1")
	cfg.BaseURL = url
	client, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = client.QueryPage(context.Background(), "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.ErrorClass != ErrorClassNetwork {
		t.Errorf("ErrorClass = %q, want %q", apiErr.ErrorClass, ErrorClassNetwork)
	}
}

func TestFetchAllIngredients_SinglePage(t *testing.T) {
	mock := testutil.NewMockNotion()
	defer mock.Close()
	mock.SetQueryPages("db-1", []testutil.PageFixture{
		testutil.ChickenPage(),
		testutil.RicePage(),
	})

	client := newTestClient(t, mock, "db-1")

	ingredients, err := client.FetchAllIngredients(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(ingredients) != 2 {
		t.Fatalf("Expected 2 ingredients, got %d", len(ingredients))
	}
	if ingredients[0].Name != "Chicken" || ingredients[1].Name != "Rice" {
		t.Errorf("Order = [%q, %q], want [Chicken, Rice]", ingredients[0].Name, ingredients[1].Name)
	}
	if mock.GetRequestCount() != 1 {
		t.Errorf("RequestCount = %d, want 1", mock.GetRequestCount())
	}
}

func TestFetchAllIngredients_MultiPage(t *testing.T) {
	mock := testutil.NewMockNotion()
	defer mock.Close()
	mock.SetQueryPages("db-1",
		[]testutil.PageFixture{testutil.ChickenPage(), testutil.RicePage()},
		[]testutil.PageFixture{testutil.NewIngredientPage("Egg", "Protein", "grams", 155, 13, 11, 1.1)},
	)

	client := newTestClient(t, mock, "db-1")

	ingredients, err := client.FetchAllIngredients(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Exactly one query per page, driven by the continuation cursor.
	if mock.GetRequestCount() != 2 {
		t.Errorf("RequestCount = %d, want 2", mock.GetRequestCount())
	}
	if mock.Requests[1].StartCursor != "cursor-1" {
		t.Errorf("Second StartCursor = %q, want cursor-1", mock.Requests[1].StartCursor)
	}

	// Entity order preserves page order, then within-page order.
	want := []string{"Chicken", "Rice", "Egg"}
	if len(ingredients) != len(want) {
		t.Fatalf("Expected %d ingredients, got %d", len(want), len(ingredients))
	}
	for i, name := range want {
		if ingredients[i].Name != name {
			t.Errorf("ingredients[%d].Name = %q, want %q", i, ingredients[i].Name, name)
		}
	}
}

func TestFetchAllIngredients_SkipsInvalid(t *testing.T) {
	mock := testutil.NewMockNotion()
	defer mock.Close()
	mock.SetQueryPages("db-1", []testutil.PageFixture{
		testutil.ChickenPage(),
		testutil.RicePage().WithNullNumber("Carbohydrate per 100g"),
	})

	client := newTestClient(t, mock, "db-1")

	ingredients, err := client.FetchAllIngredients(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(ingredients) != 1 {
		t.Fatalf("Expected 1 ingredient, got %d", len(ingredients))
	}
	if ingredients[0].Name != "Chicken" {
		t.Errorf("Name = %q, want Chicken", ingredients[0].Name)
	}
}

func TestFetchAllIngredients_TransportAborts(t *testing.T) {
	mock := testutil.NewMockNotion()
	defer mock.Close()
	mock.SetError("db-1", http.StatusInternalServerError)

	client := newTestClient(t, mock, "db-1")

	ingredients, err := client.FetchAllIngredients(context.Background())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	// No partial entity list on transport failure.
	if ingredients != nil {
		t.Errorf("Expected nil result, got %d ingredients", len(ingredients))
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.ErrorClass != ErrorClassServer {
		t.Errorf("ErrorClass = %q, want %q", apiErr.ErrorClass, ErrorClassServer)
	}
}

// Package testutil provides testing utilities for the Notion ingredient client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/google/uuid"
)

// QueryRequest captures one query payload received by the mock server.
type QueryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor"`
}

// MockNotion is a configurable mock Notion API server for testing. It serves
// scripted page sequences for database query endpoints and records the
// requests it receives.
type MockNotion struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)
	pages    map[string][][]PageFixture

	// Tracking
	RequestCount      int
	Requests          []QueryRequest
	LastRequestHeader http.Header
}

// NewMockNotion creates a new mock Notion API server.
func NewMockNotion() *MockNotion {
	mock := &MockNotion{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
		pages:    make(map[string][][]PageFixture),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload QueryRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&payload)
		}

		mock.mu.Lock()
		mock.RequestCount++
		mock.Requests = append(mock.Requests, payload)
		mock.LastRequestHeader = r.Header.Clone()
		mock.mu.Unlock()

		// Check for custom handler
		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.queryHandler(w, r, payload)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockNotion) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockNotion) Close() {
	m.server.Close()
}

// Reset clears all tracking counters and scripted pages.
func (m *MockNotion) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.Requests = nil
	m.LastRequestHeader = nil
	m.pages = make(map[string][][]PageFixture)
}

// SetHandler sets a custom handler for a specific path.
func (m *MockNotion) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetError makes a database's query endpoint answer with a fixed status code.
func (m *MockNotion) SetError(databaseID string, statusCode int) {
	m.SetHandler(queryPath(databaseID), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		fmt.Fprintf(w, `{"object":"error","status":%d}`, statusCode)
	})
}

// SetQueryPages scripts the page sequence served for a database. Each call to
// the query endpoint returns the page addressed by the request's start_cursor
// (empty cursor selects the first page); all pages but the last report
// has_more with a continuation cursor.
func (m *MockNotion) SetQueryPages(databaseID string, pages ...[]PageFixture) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[databaseID] = pages
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockNotion) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

func queryPath(databaseID string) string {
	return "/databases/" + databaseID + "/query"
}

func cursorFor(page int) string {
	return fmt.Sprintf("cursor-%d", page)
}

// queryHandler serves scripted database query pages.
func (m *MockNotion) queryHandler(w http.ResponseWriter, r *http.Request, payload QueryRequest) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	m.mu.RLock()
	var pages [][]PageFixture
	for databaseID, scripted := range m.pages {
		if r.URL.Path == queryPath(databaseID) {
			pages = scripted
			break
		}
	}
	m.mu.RUnlock()

	if pages == nil {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"object":"error","status":404,"message":"database not found"}`)
		return
	}

	// Resolve the requested page from the cursor.
	index := 0
	if payload.StartCursor != "" {
		if _, err := fmt.Sscanf(payload.StartCursor, "cursor-%d", &index); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"object":"error","status":400,"message":"invalid start_cursor"}`)
			return
		}
	}
	if index < 0 || index >= len(pages) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"object":"error","status":400,"message":"start_cursor out of range"}`)
		return
	}

	results := make([]map[string]any, 0, len(pages[index]))
	for _, fixture := range pages[index] {
		results = append(results, map[string]any(fixture))
	}

	response := map[string]any{
		"object":     "list",
		"results":    results,
		"type":       "page",
		"request_id": uuid.NewString(),
	}
	if index < len(pages)-1 {
		response["has_more"] = true
		response["next_cursor"] = cursorFor(index + 1)
	} else {
		response["has_more"] = false
		response["next_cursor"] = nil
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

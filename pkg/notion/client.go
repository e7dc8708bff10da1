// Package notion provides the Notion database client: the paginated query
// transport plus the fetch-and-parse pipeline that turns raw database records
// into validated ingredients.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/recipebuddy/notion-ingredient-client/pkg/schema"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL       = "https://api.notion.com/v1"
	defaultNotionVersion = "2022-06-28"
	defaultUserAgent     = "notion-ingredient-client/0.1.0"
	defaultPageSize      = 100
	maxPageSize          = 100
)

// Client is the Notion database client.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// Token is the Notion integration token (REQUIRED).
	Token string

	// DatabaseID is the ID of the database to query (REQUIRED).
	DatabaseID string

	// BaseURL is the API base URL (default: https://api.notion.com/v1).
	BaseURL string

	// NotionVersion is the Notion-Version header value.
	NotionVersion string

	// UserAgent identifies this client to the API.
	UserAgent string

	// PageSize is the number of records requested per query (1..100).
	PageSize int

	// HTTPTimeout bounds each query round trip.
	HTTPTimeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(token, databaseID string) Config {
	return Config{
		Token:         token,
		DatabaseID:    databaseID,
		BaseURL:       defaultBaseURL,
		NotionVersion: defaultNotionVersion,
		UserAgent:     defaultUserAgent,
		PageSize:      defaultPageSize,
		HTTPTimeout:   30 * time.Second,
	}
}

// New creates a new Notion database client.
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required")
	}

	if cfg.DatabaseID == "" {
		return nil, fmt.Errorf("database ID is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.NotionVersion == "" {
		cfg.NotionVersion = defaultNotionVersion
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.PageSize < 1 || cfg.PageSize > maxPageSize {
		return nil, fmt.Errorf("page_size must be 1..%d (got %d)", maxPageSize, cfg.PageSize)
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	logger := log.With().Str("component", "notion-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// queryPayload is the request body for a database query.
type queryPayload struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// QueryPage sends a single paginated database query. An empty startCursor
// requests the first page. Network or protocol failures return an *APIError;
// this layer never retries.
func (c *Client) QueryPage(ctx context.Context, startCursor string) (*QueryResponse, error) {
	startTime := time.Now()
	defer func() {
		notionQueryDuration.Observe(time.Since(startTime).Seconds())
	}()

	payload := queryPayload{
		PageSize:    c.config.PageSize,
		StartCursor: startCursor,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode query payload: %w", err)
	}

	url := fmt.Sprintf("%s/databases/%s/query", c.config.BaseURL, c.config.DatabaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("Notion-Version", c.config.NotionVersion)
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("database_id", c.config.DatabaseID).
		Str("start_cursor", startCursor).
		Int("page_size", c.config.PageSize).
		Msg("Executing database query")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("database_id", c.config.DatabaseID).Msg("Query request failed")
		notionErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		notionQueriesTotal.WithLabelValues("network_error").Inc()
		return nil, &APIError{
			ErrorClass: ErrorClassNetwork,
			Message:    "database query request failed",
			Err:        err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errClass := classifyStatus(resp.StatusCode)
		notionErrorsTotal.WithLabelValues(string(errClass)).Inc()
		notionQueriesTotal.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()

		c.logger.Warn().
			Str("database_id", c.config.DatabaseID).
			Int("status", resp.StatusCode).
			Str("error_class", string(errClass)).
			Msg("Database query error")

		return nil, &APIError{
			StatusCode: resp.StatusCode,
			ErrorClass: errClass,
			Message:    resp.Status,
		}
	}

	var page QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		notionErrorsTotal.WithLabelValues(string(ErrorClassServer)).Inc()
		notionQueriesTotal.WithLabelValues("decode_error").Inc()
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			ErrorClass: ErrorClassServer,
			Message:    "decode query response",
			Err:        err,
		}
	}

	notionQueriesTotal.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()
	notionPagesFetchedTotal.Inc()
	notionRecordsTotal.Add(float64(len(page.Results)))

	return &page, nil
}

// FetchAllIngredients drives pagination to completion and parses every
// accumulated record into an Ingredient. Records failing validation are
// dropped with a diagnostic; transport failures abort the whole fetch with
// no partial result. Entity order follows record order across pages.
func (c *Client) FetchAllIngredients(ctx context.Context) ([]schema.Ingredient, error) {
	start := time.Now()

	var records []Page
	cursor := ""
	pages := 0
	for {
		resp, err := c.QueryPage(ctx, cursor)
		if err != nil {
			return nil, err
		}
		records = append(records, resp.Results...)
		pages++

		if !resp.HasMore {
			break
		}
		if resp.NextCursor != nil {
			cursor = *resp.NextCursor
		} else {
			cursor = ""
		}
	}

	ingredients, err := c.ParseIngredients(records)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("pages", pages).
		Int("records", len(records)).
		Int("ingredients", len(ingredients)).
		Dur("duration", time.Since(start)).
		Msg("Database fetch complete")

	return ingredients, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

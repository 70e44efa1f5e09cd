// Package gateway is the thin client for the regional cyber-security
// backend. It issues the external calls (article list, chat query, update
// check) and translates every transport failure into a typed outcome the
// rest of the app can recover from.
//
// Calls are single-shot: no retries, no application-level timeout beyond
// the HTTP client's own.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmifsud/cyberwatch/internal/article"
	"github.com/dmifsud/cyberwatch/internal/logging"
)

// ErrUnreachable marks any transport failure: network error, non-2xx
// status, or a payload that does not match the contract. Callers check it
// with errors.Is and substitute fallback content; it is never fatal.
var ErrUnreachable = errors.New("backend unreachable")

// TransportError wraps the underlying failure of a backend call.
type TransportError struct {
	Op  string // "articles", "query", "updates"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrUnreachable, e.Err}
}

// Source is a citation attached to a chat answer.
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// QueryResponse is a chat answer from the RAG pipeline.
type QueryResponse struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources,omitempty"`
}

// UpdateSummary reports how many scraped sources have new content.
type UpdateSummary struct {
	NewContent   int
	TotalSources int
}

// Client talks to the backend over HTTP.
type Client struct {
	base    string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a gateway client for the given base URL.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base:   base,
		client: &http.Client{Timeout: timeout},
		// Article refreshes are user-triggered and cheap to spam; cap them.
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// FetchArticles retrieves up to limit raw article records.
//
// The backend serves either {"articles": [...]} or a bare array; both
// decode. A missing or undecodable article list maps to ErrUnreachable.
func (c *Client) FetchArticles(ctx context.Context, limit int) ([]article.Raw, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Op: "articles", Err: err}
	}

	endpoint := c.base + "/api/articles?limit=" + strconv.Itoa(limit)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, &TransportError{Op: "articles", Err: err}
	}

	records, err := decodeArticles(body)
	if err != nil {
		logging.Error("malformed article payload", "error", err)
		return nil, &TransportError{Op: "articles", Err: err}
	}

	logging.Debug("fetched articles", "count", len(records))
	return records, nil
}

// decodeArticles accepts the two payload shapes the backend has shipped.
func decodeArticles(body []byte) ([]article.Raw, error) {
	var wrapped struct {
		Articles []article.Raw `json:"articles"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Articles != nil {
		return wrapped.Articles, nil
	}

	var bare []article.Raw
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	return nil, errors.New("payload is neither an article object nor an array")
}

// SendQuery sends one chat question to the RAG pipeline.
//
// An answer missing from the payload is treated the same as a transport
// failure: the caller shows offline guidance either way.
func (c *Client) SendQuery(ctx context.Context, query, region string) (*QueryResponse, error) {
	payload, err := json.Marshal(map[string]string{
		"query":  query,
		"region": region,
	})
	if err != nil {
		return nil, &TransportError{Op: "query", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/query", bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Op: "query", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return nil, &TransportError{Op: "query", Err: err}
	}

	var resp QueryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: "query", Err: fmt.Errorf("failed to decode answer: %w", err)}
	}
	if resp.Answer == "" {
		return nil, &TransportError{Op: "query", Err: errors.New("payload has no answer")}
	}

	logging.Debug("query answered", "sources", len(resp.Sources))
	return &resp, nil
}

// CheckUpdates asks the update checker how many sources have new content.
func (c *Client) CheckUpdates(ctx context.Context, limit int) (*UpdateSummary, error) {
	endpoint := c.base + "/api/updates?limit=" + strconv.Itoa(limit)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, &TransportError{Op: "updates", Err: err}
	}

	var payload struct {
		Updates []struct {
			HasNewContent bool `json:"has_new_content"`
		} `json:"updates"`
		TotalSources int `json:"total_sources"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransportError{Op: "updates", Err: err}
	}

	summary := &UpdateSummary{TotalSources: payload.TotalSources}
	for _, u := range payload.Updates {
		if u.HasNewContent {
			summary.NewContent++
		}
	}
	return summary, nil
}

// get issues a GET and returns the body, treating any non-2xx as an error.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("bad endpoint: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	return body, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "cyberwatch/1.0")
	req.Header.Set("Accept", "application/json")
}

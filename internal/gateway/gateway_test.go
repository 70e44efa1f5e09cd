package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(url string) *Client {
	return NewClient(url, 5*time.Second)
}

func TestFetchArticlesWrappedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/articles" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "10" {
			t.Errorf("unexpected limit %q", r.URL.Query().Get("limit"))
		}
		w.Write([]byte(`{"articles": [{"url": "https://x/a", "title": "A", "content": "body"}]}`))
	}))
	defer server.Close()

	records, err := testClient(server.URL).FetchArticles(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].URL != "https://x/a" || records[0].Title != "A" {
		t.Errorf("wrong record: %+v", records[0])
	}
}

func TestFetchArticlesBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"url": "https://x/a", "full_content": "body"}]`))
	}))
	defer server.Close()

	records, err := testClient(server.URL).FetchArticles(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].FullContent != "body" {
		t.Errorf("wrong record: %+v", records[0])
	}
}

func TestFetchArticlesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchArticles(context.Background(), 10)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
}

func TestFetchArticlesMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchArticles(context.Background(), 10)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("malformed payload should map to ErrUnreachable, got %v", err)
	}
}

func TestFetchArticlesNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // deliberately dead

	_, err := testClient(server.URL).FetchArticles(context.Background(), 10)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("network failure should map to ErrUnreachable, got %v", err)
	}
}

func TestSendQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/query" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"answer": "Use a password manager.", "sources": [{"url": "https://x/s", "title": "S"}]}`))
	}))
	defer server.Close()

	resp, err := testClient(server.URL).SendQuery(context.Background(), "passwords?", "uk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Answer != "Use a password manager." {
		t.Errorf("wrong answer: %q", resp.Answer)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Title != "S" {
		t.Errorf("wrong sources: %+v", resp.Sources)
	}
}

func TestSendQueryMissingAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sources": []}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).SendQuery(context.Background(), "q", "uk")
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("missing answer should map to ErrUnreachable, got %v", err)
	}
}

func TestCheckUpdates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"updates": [{"has_new_content": true}, {"has_new_content": false}, {"has_new_content": true}], "total_sources": 12}`))
	}))
	defer server.Close()

	summary, err := testClient(server.URL).CheckUpdates(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.NewContent != 2 {
		t.Errorf("expected 2 sources with new content, got %d", summary.NewContent)
	}
	if summary.TotalSources != 12 {
		t.Errorf("expected 12 total sources, got %d", summary.TotalSources)
	}
}

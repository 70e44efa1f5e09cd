package article

import (
	"strings"
	"testing"
)

func TestNormalizeDedup(t *testing.T) {
	records := []Raw{
		{URL: "https://example.com/a", Title: "First", Content: "first body"},
		{URL: "https://example.com/b", Title: "Other", Content: "other body"},
		{URL: "https://example.com/a", Title: "Second", Content: "second body"},
	}

	articles := Normalize(records)

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	// First occurrence wins
	if articles[0].Title != "First" {
		t.Errorf("expected first occurrence to win, got title %q", articles[0].Title)
	}
	if articles[1].URL != "https://example.com/b" {
		t.Errorf("expected input order preserved, got %q", articles[1].URL)
	}
}

func TestNormalizeRejects(t *testing.T) {
	records := []Raw{
		{Title: "No URL", Content: "body"},
		{URL: "https://example.com/empty", Title: "No Content"},
		{URL: "https://example.com/ok", Title: "OK", Content: "body"},
	}

	articles := Normalize(records)

	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if articles[0].Title != "OK" {
		t.Errorf("wrong survivor: %q", articles[0].Title)
	}
}

func TestNormalizePrefersFullContent(t *testing.T) {
	records := []Raw{
		{URL: "https://example.com/x", Title: "X", Content: "short", FullContent: "the full text"},
	}

	articles := Normalize(records)
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if articles[0].FullContent != "the full text" {
		t.Errorf("expected full_content to be preferred, got %q", articles[0].FullContent)
	}
}

func TestTitleBackfill(t *testing.T) {
	tests := []struct {
		name  string
		title string
		url   string
		want  string
	}{
		{"unknown literal", "Unknown", "https://x/a-b-c", "A B C"},
		{"absent", "", "https://x/how-to-stay-safe", "How To Stay Safe"},
		{"url as title", "https://x/a-b-c", "https://x/a-b-c", "A B C"},
		{"no path", "", "https://x", DefaultCategory},
		{"trailing slash", "", "https://x/phishing-guide/", "Phishing Guide"},
		{"provided kept", "Real Title", "https://x/a-b-c", "Real Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles := Normalize([]Raw{{URL: tt.url, Title: tt.title, Content: "body"}})
			if len(articles) != 1 {
				t.Fatalf("expected 1 article, got %d", len(articles))
			}
			if articles[0].Title != tt.want {
				t.Errorf("title = %q, want %q", articles[0].Title, tt.want)
			}
		})
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://x/iot-devices-at-risk", "IoT Security"},
		{"https://x/internet-of-things-news", "IoT Security"},
		{"https://x/new-scam-targets-pensioners", "Social Engineering"},
		{"https://x/supply-chain-compromise", "Attack Vectors"},
		{"https://x/vulnerability-disclosed", "Vulnerabilities"},
		{"https://x/post-quantum-migration", "Cryptography"},
		{"https://x/THREAT-report", "Threat Intelligence"},
		{"https://x/career-advice", "Careers"},
		{"https://x/data-protection-rules", "Governance"},
		{"https://x/nothing-matches-here", DefaultCategory},
	}

	for _, tt := range tests {
		if got := InferCategory(tt.url); got != tt.want {
			t.Errorf("InferCategory(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestCategoryRuleOrder(t *testing.T) {
	// "physical" appears before "attack" in the rule order, so a URL
	// containing both resolves to Physical Security.
	got := InferCategory("https://x/physical-attack-on-datacentre")
	if got != "Physical Security" {
		t.Errorf("expected first rule to win, got %q", got)
	}
}

func TestExplicitCategoryWins(t *testing.T) {
	articles := Normalize([]Raw{
		{URL: "https://x/iot-gadgets", Category: "Careers", Content: "body"},
	})
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if articles[0].Category != "Careers" {
		t.Errorf("expected provided category to win, got %q", articles[0].Category)
	}
}

func TestExcerptDerivation(t *testing.T) {
	long := strings.Repeat("x", 300)
	articles := Normalize([]Raw{
		{URL: "https://x/a", Content: long},
		{URL: "https://x/b", Content: "short body"},
		{URL: "https://x/c", Content: long, Excerpt: "provided"},
	})
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}

	if want := strings.Repeat("x", 200) + "..."; articles[0].Excerpt != want {
		t.Errorf("derived excerpt = %d chars, want 200 + ellipsis", len(articles[0].Excerpt))
	}
	if articles[1].Excerpt != "short body" {
		t.Errorf("short content should pass through untruncated, got %q", articles[1].Excerpt)
	}
	if articles[2].Excerpt != "provided" {
		t.Errorf("provided excerpt should win, got %q", articles[2].Excerpt)
	}
}

func TestIcon(t *testing.T) {
	if Icon("IoT Security") == "" {
		t.Error("expected an icon for a known category")
	}
	if Icon("Made Up Category") != defaultIcon {
		t.Error("expected the default lock icon for unknown categories")
	}
}

func TestFallbackDeterministic(t *testing.T) {
	a := Fallback()
	b := Fallback()

	if len(a) != 4 {
		t.Fatalf("expected 4 fallback articles, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("fallback article %d is not deterministic", i)
		}
		if a[i].URL == "" || a[i].FullContent == "" {
			t.Errorf("fallback article %d is missing fields", i)
		}
	}

	// URLs are unique, like any normalized set
	seen := make(map[string]bool)
	for _, art := range a {
		if seen[art.URL] {
			t.Errorf("duplicate fallback URL %q", art.URL)
		}
		seen[art.URL] = true
	}
}

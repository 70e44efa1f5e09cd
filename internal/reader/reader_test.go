package reader

import (
	"testing"

	"github.com/dmifsud/cyberwatch/internal/article"
)

func TestParagraphsGrouping(t *testing.T) {
	a := article.Article{
		FullContent: "One. Two. Three. Four. Five.",
	}

	paragraphs := Paragraphs(a)

	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(paragraphs), paragraphs)
	}
	if paragraphs[0] != "One. Two. Three." {
		t.Errorf("first paragraph = %q", paragraphs[0])
	}
	// Final partial group is flushed
	if paragraphs[1] != "Four. Five." {
		t.Errorf("second paragraph = %q", paragraphs[1])
	}
}

func TestParagraphsExactMultiple(t *testing.T) {
	a := article.Article{FullContent: "A. B. C."}

	paragraphs := Paragraphs(a)
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0] != "A. B. C." {
		t.Errorf("paragraph = %q", paragraphs[0])
	}
}

func TestParagraphsFallsBackToExcerpt(t *testing.T) {
	a := article.Article{Excerpt: "Just the excerpt."}

	paragraphs := Paragraphs(a)
	if len(paragraphs) != 1 || paragraphs[0] != "Just the excerpt." {
		t.Errorf("expected excerpt fallback, got %v", paragraphs)
	}
}

func TestParagraphsEmpty(t *testing.T) {
	if got := Paragraphs(article.Article{}); got != nil {
		t.Errorf("expected nil for empty article, got %v", got)
	}
}

func TestParagraphsNoTrailingPeriod(t *testing.T) {
	a := article.Article{FullContent: "First. Second without terminator"}

	paragraphs := Paragraphs(a)
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0] != "First. Second without terminator." {
		t.Errorf("paragraph = %q", paragraphs[0])
	}
}

func TestRelatedRanking(t *testing.T) {
	all := []article.Article{
		{URL: "a", Title: "A", Category: "X"},
		{URL: "b", Title: "B", Category: "Y"},
		{URL: "c", Title: "C", Category: "X"},
		{URL: "d", Title: "D", Category: "Y"},
	}

	related := Related(all, "a")

	if len(related) != 3 {
		t.Fatalf("expected 3 related, got %d", len(related))
	}
	// Same category first, stable order preserved within each rank:
	// C (same cat), then B before D (original order).
	want := []string{"c", "b", "d"}
	for i, w := range want {
		if related[i].URL != w {
			t.Errorf("related[%d] = %q, want %q", i, related[i].URL, w)
		}
	}
}

func TestRelatedExcludesSelected(t *testing.T) {
	all := []article.Article{
		{URL: "a", Category: "X"},
		{URL: "b", Category: "X"},
	}

	related := Related(all, "a")
	for _, r := range related {
		if r.URL == "a" {
			t.Error("selected article must not appear in its own related list")
		}
	}
}

func TestRelatedCaps(t *testing.T) {
	all := []article.Article{
		{URL: "a", Category: "X"},
		{URL: "b", Category: "X"},
		{URL: "c", Category: "X"},
		{URL: "d", Category: "X"},
		{URL: "e", Category: "X"},
	}

	related := Related(all, "a")
	if len(related) != RelatedCount {
		t.Errorf("expected %d related, got %d", RelatedCount, len(related))
	}
}

func TestRelatedUnknownSelection(t *testing.T) {
	all := []article.Article{{URL: "a", Category: "X"}}

	if got := Related(all, "missing"); got != nil {
		t.Errorf("expected nil for unknown selection, got %v", got)
	}
}

func TestRelatedDuplicateContent(t *testing.T) {
	// Articles with identical content but distinct URLs are the reason
	// selection keys on URL.
	all := []article.Article{
		{URL: "a", Title: "Same", Category: "X"},
		{URL: "b", Title: "Same", Category: "X"},
		{URL: "c", Title: "Same", Category: "X"},
	}

	related := Related(all, "b")
	if len(related) != 2 {
		t.Fatalf("expected 2 related, got %d", len(related))
	}
	if related[0].URL != "a" || related[1].URL != "c" {
		t.Errorf("got %q, %q; want a, c", related[0].URL, related[1].URL)
	}
}

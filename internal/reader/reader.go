// Package reader projects a selected article into display form: body
// paragraphs and a short list of related articles.
package reader

import (
	"strings"

	"github.com/dmifsud/cyberwatch/internal/article"
)

// sentencesPerParagraph controls how body text is regrouped for display.
const sentencesPerParagraph = 3

// RelatedCount is how many related articles accompany the reader view.
const RelatedCount = 3

// Paragraphs splits an article's body into display paragraphs.
//
// The body (full content, or the excerpt when absent) is cut into sentence
// units on trailing-period boundaries, then regrouped into paragraphs of up
// to three sentences; a final partial group is flushed as-is.
func Paragraphs(a article.Article) []string {
	body := a.FullContent
	if body == "" {
		body = a.Excerpt
	}
	if strings.TrimSpace(body) == "" {
		return nil
	}

	sentences := splitSentences(body)

	paragraphs := make([]string, 0, (len(sentences)+sentencesPerParagraph-1)/sentencesPerParagraph)
	for start := 0; start < len(sentences); start += sentencesPerParagraph {
		end := start + sentencesPerParagraph
		if end > len(sentences) {
			end = len(sentences)
		}
		paragraphs = append(paragraphs, strings.Join(sentences[start:end], " "))
	}
	return paragraphs
}

// splitSentences cuts text on trailing periods. This is a heuristic, not a
// full sentence tokenizer: abbreviations and decimal points will split too.
func splitSentences(text string) []string {
	parts := strings.Split(text, ".")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sentences = append(sentences, p+".")
	}
	return sentences
}

// Related ranks the rest of the working set against the selected article
// and returns the top matches.
//
// Selection is by URL, the stable identity key - never by position or value,
// which break once equal-content articles exist. The ranking is a single
// binary key: same category as the selected article first, everything else
// after, with the original relative order preserved within each rank.
func Related(all []article.Article, selectedURL string) []article.Article {
	var selected *article.Article
	for i := range all {
		if all[i].URL == selectedURL {
			selected = &all[i]
			break
		}
	}
	if selected == nil {
		return nil
	}

	// Two ordered passes keep the sort trivially stable.
	related := make([]article.Article, 0, RelatedCount)
	for _, a := range all {
		if a.URL == selectedURL {
			continue
		}
		if a.Category == selected.Category {
			related = append(related, a)
		}
	}
	for _, a := range all {
		if a.URL == selectedURL {
			continue
		}
		if a.Category != selected.Category {
			related = append(related, a)
		}
	}

	if len(related) > RelatedCount {
		related = related[:RelatedCount]
	}
	return related
}

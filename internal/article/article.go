// Package article provides the canonical article model and the normalizer
// that turns raw backend records into it.
//
// All functions are pure: records in, articles out. No side effects.
package article

import (
	"net/url"
	"strings"
	"unicode"
)

// DefaultCategory is used when no category can be inferred from the URL.
const DefaultCategory = "Cyber Security"

// excerptLength is how much content to take when no excerpt is provided.
const excerptLength = 200

// Raw is an article record as the backend serves it. Every field other
// than URL is optional.
type Raw struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Content     string `json:"content,omitempty"`
	FullContent string `json:"full_content,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Article is a normalized record. URL is the identity key: it is unique
// within any normalized set, and selection elsewhere in the app keys on it.
type Article struct {
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	FullContent string `json:"full_content"`
}

// categoryRule maps URL substrings to a category. Rules are ordered;
// the first match wins.
type categoryRule struct {
	substrings []string
	category   string
}

var categoryRules = []categoryRule{
	{[]string{"physical"}, "Physical Security"},
	{[]string{"technical"}, "Technical Security"},
	{[]string{"human"}, "Human Security"},
	{[]string{"iot", "internet-of-things"}, "IoT Security"},
	{[]string{"threat"}, "Threat Intelligence"},
	{[]string{"career"}, "Careers"},
	{[]string{"social-engineering", "scam"}, "Social Engineering"},
	{[]string{"hacker", "nation-state"}, "Threat Actors"},
	{[]string{"attack", "supply-chain"}, "Attack Vectors"},
	{[]string{"vulnerabilit"}, "Vulnerabilities"},
	{[]string{"cryptograph", "quantum"}, "Cryptography"},
	{[]string{"governance", "protection"}, "Governance"},
}

// categoryIcons maps category names to their display glyph.
var categoryIcons = map[string]string{
	"Physical Security":   "🏠",
	"Technical Security":  "🖥",
	"Human Security":      "👤",
	"IoT Security":        "📡",
	"Threat Intelligence": "🔍",
	"Careers":             "💼",
	"Social Engineering":  "🎣",
	"Threat Actors":       "🕵",
	"Attack Vectors":      "⚡",
	"Vulnerabilities":     "🛡",
	"Cryptography":        "🔑",
	"Governance":          "⚖",
	DefaultCategory:       "🔒",
}

// defaultIcon is shown for categories outside the table.
const defaultIcon = "🔒"

// Normalize converts raw records into canonical articles.
//
// Records are rejected silently when the URL is missing, when the URL has
// already been seen in this batch (first occurrence wins), or when the
// resolved content is empty. Output order equals input order minus rejects.
func Normalize(records []Raw) []Article {
	seen := make(map[string]bool, len(records))
	articles := make([]Article, 0, len(records))

	for _, r := range records {
		if r.URL == "" || seen[r.URL] {
			continue
		}

		content := r.FullContent
		if content == "" {
			content = r.Content
		}
		if content == "" {
			continue
		}
		seen[r.URL] = true

		category := r.Category
		if category == "" {
			category = InferCategory(r.URL)
		}

		excerpt := r.Excerpt
		if excerpt == "" {
			excerpt = makeExcerpt(content)
		}

		articles = append(articles, Article{
			Title:       resolveTitle(r.Title, r.URL),
			Excerpt:     excerpt,
			URL:         r.URL,
			Icon:        Icon(category),
			Category:    category,
			FullContent: content,
		})
	}

	return articles
}

// InferCategory derives a category from URL substring heuristics.
// Matching is case-insensitive against the full URL; rules are checked in
// order and the first match wins.
func InferCategory(rawURL string) string {
	lower := strings.ToLower(rawURL)
	for _, rule := range categoryRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.category
			}
		}
	}
	return DefaultCategory
}

// Icon returns the display glyph for a category.
func Icon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return defaultIcon
}

// resolveTitle picks the provided title unless it is absent, the literal
// "Unknown", or just the URL repeated - then a title is derived from the URL.
func resolveTitle(title, rawURL string) string {
	if title != "" && title != "Unknown" && title != rawURL {
		return title
	}
	return TitleFromURL(rawURL)
}

// TitleFromURL derives a display title from the last non-empty path segment
// of a URL: hyphens become spaces and the first letter of each word is
// capitalized. URLs with no usable path segment fall back to the default
// category name.
func TitleFromURL(rawURL string) string {
	segment := lastPathSegment(rawURL)
	if segment == "" {
		return DefaultCategory
	}

	words := strings.Split(strings.ReplaceAll(segment, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func lastPathSegment(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}

	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

// makeExcerpt takes the leading run of content as a teaser.
// Rune-aware slicing avoids breaking UTF-8 characters.
func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

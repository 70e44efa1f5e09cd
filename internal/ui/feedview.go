package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmifsud/cyberwatch/internal/article"
	"github.com/dmifsud/cyberwatch/internal/gateway"
)

// gridColumns is how many article cards fit per row.
const gridColumns = 3

func (a App) updateFeedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := a.feed.Visible()

	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "tab":
		a.mode = modeChat
		return a, nil

	case "j", "down":
		if a.cursor < len(visible)-1 {
			a.cursor++
		}
		return a, nil

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "g", "home":
		a.cursor = 0
		return a, nil

	case "G", "end":
		if len(visible) > 0 {
			a.cursor = len(visible) - 1
		}
		return a, nil

	case "h", "left":
		return a.shiftCategory(-1), nil

	case "l", "right":
		return a.shiftCategory(1), nil

	case "m":
		if a.feed.HasMore() {
			a.feed.LoadMore()
		}
		return a, nil

	case "enter":
		if len(visible) > 0 && a.cursor < len(visible) {
			a.openReader(visible[a.cursor].URL)
			a.mode = modeReader
		}
		return a, nil

	case "r":
		if a.cfg.LoadArticles != nil {
			a.loading = true
			return a, a.cfg.LoadArticles()
		}
		return a, nil
	}

	return a, nil
}

// shiftCategory moves the filter selection and resets the article cursor.
func (a App) shiftCategory(delta int) App {
	options := a.feed.Categories()
	if len(options) == 0 {
		return a
	}
	a.catIndex = (a.catIndex + delta + len(options)) % len(options)
	a.feed.SetFilter(options[a.catIndex].Name)
	a.cursor = 0
	return a
}

// findCategoryIndex locates the active category in the current option
// list; a vanished category falls back to "all".
func (a App) findCategoryIndex(category string) int {
	for i, opt := range a.feed.Categories() {
		if opt.Name == category {
			return i
		}
	}
	return 0
}

// lookupArticle finds an article in the working set by its URL key.
func (a App) lookupArticle(url string) *article.Article {
	all := a.feed.All()
	for i := range all {
		if all[i].URL == url {
			return &all[i]
		}
	}
	return nil
}

func (a App) viewFeed() string {
	if !a.feed.Loaded() {
		return HelpStyle.Render("Fetching articles...")
	}

	var b strings.Builder
	b.WriteString(a.viewCategoryBar())
	b.WriteString("\n")

	visible := a.feed.Visible()
	if len(visible) == 0 {
		b.WriteString(HelpStyle.Render("No articles in this category."))
		return b.String()
	}

	cardWidth := a.width/gridColumns - 4
	if cardWidth < 20 {
		cardWidth = 20
	}

	for row := 0; row*gridColumns < len(visible); row++ {
		cards := make([]string, 0, gridColumns)
		for col := 0; col < gridColumns; col++ {
			i := row*gridColumns + col
			if i >= len(visible) {
				break
			}
			cards = append(cards, a.renderCard(visible[i], i == a.cursor, cardWidth))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
	}

	if a.feed.HasMore() {
		remaining := a.feed.FilteredCount() - len(visible)
		b.WriteString(HelpStyle.Render(fmt.Sprintf("m: load more (%d remaining)", remaining)))
	}

	return b.String()
}

func (a App) viewCategoryBar() string {
	parts := make([]string, 0, 8)
	for i, opt := range a.feed.Categories() {
		label := fmt.Sprintf("%s (%d)", opt.Name, opt.Count)
		if i == a.catIndex {
			parts = append(parts, CategoryActive.Render(label))
		} else {
			parts = append(parts, CategoryOptionStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a App) renderCard(art article.Article, selected bool, width int) string {
	style := Card
	if selected {
		style = CardSelected
	}

	title := CardTitle.Render(truncate(art.Icon+" "+art.Title, width))
	badge := CategoryBadge.Render(art.Category)
	excerpt := truncate(art.Excerpt, width*2)

	return style.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, badge, excerpt),
	)
}

func statusCount(filtered, visible int) string {
	return fmt.Sprintf("%d/%d articles", visible, filtered)
}

func statusUpdates(summary *gateway.UpdateSummary) string {
	return fmt.Sprintf("• %d of %d sources have new content", summary.NewContent, summary.TotalSources)
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
// Rune-aware slicing avoids breaking UTF-8 characters.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

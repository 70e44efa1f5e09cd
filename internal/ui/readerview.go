package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmifsud/cyberwatch/internal/reader"
)

// openReader projects the identified article into the viewport. Selection
// is by URL; a stale URL leaves the reader empty and the caller falls back
// to the feed.
func (a *App) openReader(url string) {
	art := a.lookupArticle(url)
	if art == nil {
		a.readerURL = ""
		a.body.SetContent("")
		return
	}
	a.readerURL = url

	paragraphs := reader.Paragraphs(*art)
	content := ReaderBody.Width(a.body.Width).Render(strings.Join(paragraphs, "\n\n"))
	a.body.SetContent(content)
	a.body.GotoTop()
}

func (a App) updateReaderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "esc", "backspace":
		a.mode = modeFeed
		return a, nil

	case "tab":
		a.mode = modeChat
		return a, nil

	case "1", "2", "3":
		related := reader.Related(a.feed.All(), a.readerURL)
		i := int(msg.String()[0] - '1')
		if i < len(related) {
			a.openReader(related[i].URL)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.body, cmd = a.body.Update(msg)
	return a, cmd
}

func (a App) viewReader() string {
	art := a.lookupArticle(a.readerURL)
	if art == nil {
		return HelpStyle.Render("Article no longer available.")
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		ReaderTitle.Render(art.Icon+" "+art.Title),
		CategoryBadge.Render(art.Category),
	)

	related := reader.Related(a.feed.All(), a.readerURL)
	var rel strings.Builder
	if len(related) > 0 {
		rel.WriteString(RelatedHeader.Render("Related articles"))
		rel.WriteString("\n")
		for i, r := range related {
			rel.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, r.Icon, truncate(r.Title, a.width-10)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.body.View(),
		rel.String(),
	)
}

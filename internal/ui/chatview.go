package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmifsud/cyberwatch/internal/chat"
	"github.com/dmifsud/cyberwatch/internal/logging"
)

func (a App) updateChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := a.cfg.Chats

	switch msg.String() {
	case "esc":
		a.mode = modeFeed
		return a, nil

	case "ctrl+n":
		if _, err := store.Create(); err != nil {
			a.err = err
		}
		return a, nil

	case "ctrl+p":
		if err := store.TogglePin(store.ActiveID()); err != nil {
			logging.Warn("pin failed", "error", err)
		}
		return a, nil

	case "ctrl+x":
		if err := store.Delete(store.ActiveID()); err != nil {
			logging.Warn("delete failed", "error", err)
		}
		return a, nil

	case "ctrl+k":
		a.shiftConversation(-1)
		return a, nil

	case "ctrl+j":
		a.shiftConversation(1)
		return a, nil

	case "enter":
		return a.sendMessage()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// shiftConversation selects the previous/next conversation in display
// order (pinned first).
func (a *App) shiftConversation(delta int) {
	ordered := a.cfg.Chats.Ordered()
	if len(ordered) < 2 {
		return
	}
	current := 0
	for i, c := range ordered {
		if c.ID == a.cfg.Chats.ActiveID() {
			current = i
			break
		}
	}
	next := (current + delta + len(ordered)) % len(ordered)
	if err := a.cfg.Chats.Select(ordered[next].ID); err != nil {
		logging.Warn("select failed", "error", err)
	}
}

// sendMessage begins an exchange turn on the active conversation. The
// user message appears immediately; the typing indicator spins until the
// turn resolves.
func (a App) sendMessage() (tea.Model, tea.Cmd) {
	if a.pending != nil {
		// One in-flight request per user action
		return a, nil
	}

	turn, err := a.cfg.Exchange.Begin(a.cfg.Chats.ActiveID(), a.input.Value())
	if err != nil {
		logging.Warn("send rejected", "error", err)
		return a, nil
	}
	if turn.State != chat.TurnSending {
		return a, nil
	}

	a.pending = &turn
	a.input.Reset()
	return a, tea.Batch(a.spin.Tick, a.cfg.ResolveTurn(turn))
}

func (a App) viewChat() string {
	sidebar := a.viewConversationList()
	log := a.viewMessageLog()

	panel := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, log)
	return lipgloss.JoinVertical(lipgloss.Left, panel, a.input.View())
}

func (a App) viewConversationList() string {
	var b strings.Builder
	activeID := a.cfg.Chats.ActiveID()

	width := a.width / 4
	if width < 16 {
		width = 16
	}

	for _, conv := range a.cfg.Chats.Ordered() {
		label := conv.Title
		if conv.Pinned {
			label = "📌 " + label
		}
		label = truncate(label, width-2)
		if conv.ID == activeID {
			b.WriteString(ConvSelected.Width(width).Render(label))
		} else {
			b.WriteString(ConvItem.Width(width).Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) viewMessageLog() string {
	conv := a.cfg.Chats.Active()
	width := a.width - a.width/4 - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, m := range conv.Messages {
		switch m.Sender {
		case chat.SenderUser:
			b.WriteString(UserMsg.Render("you: ") + wrap(m.Text, width))
		default:
			b.WriteString(BotMsg.Render(wrap(m.Text, width)))
			for _, src := range m.Sources {
				b.WriteString("\n" + SourceCite.Render(fmt.Sprintf("  ↳ %s (%s)", src.Title, src.URL)))
			}
		}
		b.WriteString("\n\n")
	}

	// The typing indicator is transient UI state, never a message: a
	// reload mid-flight must not show a stuck indicator.
	if a.pending != nil && a.pending.ConversationID == conv.ID {
		b.WriteString(a.spin.View() + BotMsg.Render(" thinking..."))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

// wrap is a cheap word wrapper for message text.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	var b strings.Builder
	line := 0
	for i, w := range words {
		if i > 0 {
			if line+len(w)+1 > width {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}

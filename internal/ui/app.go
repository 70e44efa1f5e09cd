package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmifsud/cyberwatch/internal/chat"
	"github.com/dmifsud/cyberwatch/internal/feed"
	"github.com/dmifsud/cyberwatch/internal/gateway"
	"github.com/dmifsud/cyberwatch/internal/logging"
)

// View modes.
const (
	modeFeed = iota
	modeReader
	modeChat
)

// refreshInterval is how often the feed and update checker are re-polled.
const refreshInterval = 5 * time.Minute

// AppConfig wires the App to the outside world.
//
// The App never talks to the gateway or the database directly; remote work
// arrives as tea.Cmd factories and state mutations go through the injected
// store handles. This keeps every business rule testable without a
// terminal attached.
type AppConfig struct {
	LoadArticles func() tea.Cmd
	CheckUpdates func() tea.Cmd
	ResolveTurn  func(turn chat.Turn) tea.Cmd

	Chats    *chat.Store
	Exchange *chat.Exchange
}

// App is the root Bubble Tea model.
type App struct {
	cfg AppConfig

	mode    int
	width   int
	height  int
	ready   bool
	loading bool
	offline bool

	// Feed state
	feed     *feed.State
	cursor   int
	catIndex int

	// Reader state
	readerURL string
	body      viewport.Model

	// Chat state
	input   textinput.Model
	spin    spinner.Model
	pending *chat.Turn

	updates *gateway.UpdateSummary
	err     error
}

// NewApp creates the root model.
func NewApp(cfg AppConfig) App {
	input := textinput.New()
	input.Placeholder = "Ask about staying safe online..."
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	return App{
		cfg:   cfg,
		feed:  feed.New(),
		input: input,
		spin:  spin,
	}
}

// Init starts the first article load and update check.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if a.cfg.LoadArticles != nil {
		a.loading = true
		cmds = append(cmds, a.cfg.LoadArticles())
	}
	if a.cfg.CheckUpdates != nil {
		cmds = append(cmds, a.cfg.CheckUpdates())
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return RefreshTick{}
	})
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.body.Width = msg.Width - 4
		a.body.Height = msg.Height - 8
		a.ready = true
		if a.mode == modeReader {
			a.openReader(a.readerURL)
		}
		return a, nil

	case ArticlesLoaded:
		a.loading = false
		a.offline = msg.Fallback
		a.feed.Replace(msg.Articles)
		a.catIndex = a.findCategoryIndex(a.feed.ActiveCategory())
		if visible := a.feed.Visible(); a.cursor >= len(visible) {
			a.cursor = 0
		}
		// A wholesale replace can orphan the open article
		if a.mode == modeReader && a.lookupArticle(a.readerURL) == nil {
			a.mode = modeFeed
		}
		return a, nil

	case TurnResolved:
		if a.pending != nil && a.pending.RequestID == msg.Turn.RequestID {
			a.pending = nil
		}
		if msg.Err != nil {
			logging.Warn("turn dropped", "error", msg.Err)
		}
		return a, nil

	case UpdatesChecked:
		if msg.Err == nil {
			a.updates = msg.Summary
		}
		return a, nil

	case RefreshTick:
		cmds := []tea.Cmd{tickCmd()}
		if a.cfg.LoadArticles != nil {
			a.loading = true
			cmds = append(cmds, a.cfg.LoadArticles())
		}
		if a.cfg.CheckUpdates != nil {
			cmds = append(cmds, a.cfg.CheckUpdates())
		}
		return a, tea.Batch(cmds...)

	case spinner.TickMsg:
		if a.pending == nil {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleKeyMsg routes keyboard input to the active view.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeFeed:
		return a.updateFeedKeys(msg)
	case modeReader:
		return a.updateReaderKeys(msg)
	case modeChat:
		return a.updateChatKeys(msg)
	}
	return a, nil
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var body string
	switch a.mode {
	case modeFeed:
		body = a.viewFeed()
	case modeReader:
		body = a.viewReader()
	case modeChat:
		body = a.viewChat()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewTabs(),
		body,
		a.viewStatusBar(),
	)
}

func (a App) viewTabs() string {
	render := func(label string, active bool) string {
		if active {
			return TabActive.Render(label)
		}
		return TabInactive.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render("News Feed", a.mode == modeFeed || a.mode == modeReader),
		render("Assistant", a.mode == modeChat),
	)
}

func (a App) viewStatusBar() string {
	left := ""
	if a.loading {
		left = "refreshing..."
	} else if a.offline {
		left = StatusWarn.Render("offline - showing sample articles")
	} else if a.feed.Loaded() {
		left = statusCount(a.feed.FilteredCount(), len(a.feed.Visible()))
	}

	right := ""
	if a.updates != nil && a.updates.NewContent > 0 {
		right = statusUpdates(a.updates)
	}

	hints := a.keyHints()

	bar := left
	if right != "" {
		bar += "  " + right
	}
	return StatusBar.Width(a.width).Render(bar) + "\n" + HelpStyle.Render(hints)
}

func (a App) keyHints() string {
	switch a.mode {
	case modeReader:
		return "esc back • j/k scroll • 1-3 open related • ctrl+c quit"
	case modeChat:
		return "enter send • ctrl+n new • ctrl+p pin • ctrl+x delete • ctrl+j/ctrl+k switch • esc feed"
	default:
		return "tab chat • h/l category • j/k move • enter read • m more • r refresh • q quit"
	}
}

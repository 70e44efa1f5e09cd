package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmifsud/cyberwatch/internal/article"
	"github.com/dmifsud/cyberwatch/internal/chat"
	"github.com/dmifsud/cyberwatch/internal/config"
	"github.com/dmifsud/cyberwatch/internal/gateway"
	"github.com/dmifsud/cyberwatch/internal/logging"
	"github.com/dmifsud/cyberwatch/internal/state"
	"github.com/dmifsud/cyberwatch/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cyberwatch: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.AutoPopulateFromEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	dataDir := filepath.Join(homeDir, ".cyberwatch")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	kv, err := state.Open(filepath.Join(dataDir, "cyberwatch.db"))
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer kv.Close()

	// The theme preference is persisted alongside the chat state so other
	// frontends sharing the database see the same value.
	if err := kv.Set(state.KeyTheme, cfg.UI.Theme); err != nil {
		logging.Warn("failed to persist theme", "error", err)
	}

	client := gateway.NewClient(cfg.Backend, 30*time.Second)

	chats, err := chat.NewStore(kv)
	if err != nil {
		return fmt.Errorf("failed to load chat state: %w", err)
	}
	exchange := chat.NewExchange(chats, client, cfg.Region)

	appCfg := ui.AppConfig{
		Chats:    chats,
		Exchange: exchange,

		// Article loads never fail the UI: a dead backend degrades to the
		// built-in sample set and an offline banner.
		LoadArticles: func() tea.Cmd {
			return func() tea.Msg {
				raw, err := client.FetchArticles(ctx, cfg.ArticleLimit)
				if err != nil {
					logging.Warn("article fetch failed, using fallback", "error", err)
					return ui.ArticlesLoaded{Articles: article.Fallback(), Fallback: true}
				}
				return ui.ArticlesLoaded{Articles: article.Normalize(raw)}
			}
		},
		CheckUpdates: func() tea.Cmd {
			return func() tea.Msg {
				summary, err := client.CheckUpdates(ctx, cfg.ArticleLimit)
				return ui.UpdatesChecked{Summary: summary, Err: err}
			}
		},
		ResolveTurn: func(turn chat.Turn) tea.Cmd {
			return func() tea.Msg {
				resolved, err := exchange.Resolve(ctx, turn)
				return ui.TurnResolved{Turn: resolved, Err: err}
			}
		},
	}

	program := tea.NewProgram(ui.NewApp(appCfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

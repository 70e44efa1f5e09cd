package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("39")  // Blue
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("213") // Pink
	colorWarn      = lipgloss.Color("214") // Orange
)

// TabActive style for the selected view tab.
var TabActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 2)

// TabInactive style for unselected view tabs.
var TabInactive = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 2)

// Card style for an article in the feed grid.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1).
	Margin(0, 1, 1, 0)

// CardSelected style for the highlighted article.
var CardSelected = Card.
	BorderForeground(colorHighlight)

// CardTitle style for article titles on cards.
var CardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// CategoryBadge style for category labels.
var CategoryBadge = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// CategoryActive style for the selected filter option.
var CategoryActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// CategoryOption style for unselected filter options.
var CategoryOptionStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// ReaderTitle style for the article heading in the reader.
var ReaderTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	MarginBottom(1)

// ReaderBody style for paragraphs.
var ReaderBody = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252"))

// RelatedHeader style for the related-articles section.
var RelatedHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPrimary).
	MarginTop(1)

// ConvSelected style for the active conversation in the sidebar.
var ConvSelected = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// ConvItem style for other conversations.
var ConvItem = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// UserMsg style for user chat messages.
var UserMsg = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Bold(true)

// BotMsg style for bot chat messages.
var BotMsg = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252"))

// SourceCite style for answer citations.
var SourceCite = lipgloss.NewStyle().
	Foreground(colorMuted).
	Italic(true)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusWarn style for the offline notice in the status bar.
var StatusWarn = lipgloss.NewStyle().
	Foreground(colorWarn).
	Bold(true)

// HelpStyle for key hints.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)

// Package ui provides the Bubble Tea TUI for cyberwatch.
package ui

import (
	"github.com/dmifsud/cyberwatch/internal/article"
	"github.com/dmifsud/cyberwatch/internal/chat"
	"github.com/dmifsud/cyberwatch/internal/gateway"
)

// ArticlesLoaded is sent when an article refresh finishes.
// Fallback is true when the backend was unreachable and the fixed sample
// set was substituted.
type ArticlesLoaded struct {
	Articles []article.Article
	Fallback bool
}

// TurnResolved is sent when a chat exchange round trip finishes. The turn
// carries its originating conversation id; the reply has already been
// appended to that conversation by the time this message arrives.
type TurnResolved struct {
	Turn chat.Turn
	Err  error
}

// UpdatesChecked is sent when the update checker has been polled.
type UpdatesChecked struct {
	Summary *gateway.UpdateSummary
	Err     error
}

// RefreshTick triggers the periodic article refresh.
type RefreshTick struct{}

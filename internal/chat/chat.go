// Package chat owns the multi-conversation session model: the persisted
// conversation store and the controller for one send/reply exchange with
// the backend.
package chat

// Message senders. Every message in a conversation is one or the other;
// transient UI states (the typing indicator) are never messages.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// DefaultTitle is a conversation's title until its first user message.
const DefaultTitle = "New Chat"

// titleLimit is how many characters of the first user message become the
// conversation title.
const titleLimit = 30

// SeedMessage opens every new conversation.
const SeedMessage = "Hello! I'm your cyber security assistant. Ask me anything about staying safe online in the UK and Malta."

// OfflineMessage is appended as a regular bot message when the backend
// cannot be reached. It persists like any other message.
const OfflineMessage = "I can't reach the assistant service right now. While you wait: use strong unique passwords, keep your devices updated, and treat unexpected links and attachments with suspicion. Please try again in a moment."

// Source is a citation attached to a bot message.
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Message is one chat turn.
type Message struct {
	Sender  string   `json:"sender"`
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

// Conversation is a persisted, named sequence of chat turns.
//
// ID is immutable and unique per creation event; Messages is append-only
// while the conversation lives.
type Conversation struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
	Pinned   bool      `json:"pinned"`
}

// titled reports whether the conversation has outgrown the default title.
func (c *Conversation) titled() bool {
	return c.Title != "" && c.Title != DefaultTitle
}

// hasUserMessage reports whether any user-authored turn exists yet.
func (c *Conversation) hasUserMessage() bool {
	for _, m := range c.Messages {
		if m.Sender == SenderUser {
			return true
		}
	}
	return false
}

// deriveTitle truncates the first user message into a title.
func deriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) > titleLimit {
		runes = runes[:titleLimit]
	}
	return string(runes)
}

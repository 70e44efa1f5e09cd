package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmifsud/cyberwatch/internal/logging"
	"github.com/dmifsud/cyberwatch/internal/state"
)

// ErrNotFound is returned when an operation references a conversation id
// the store does not hold. Under normal UI flow ids only ever come from the
// store itself, so callers treat this as a defensive no-op, not a fault.
var ErrNotFound = errors.New("conversation not found")

// Persistence is the key-value substrate the store writes through to.
// *state.KV satisfies it.
type Persistence interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store owns all conversations and the active-conversation pointer.
//
// Every mutating operation re-serializes the whole store before returning
// (write-through, no batching), so a crash never loses an acknowledged
// mutation. The collection is kept in creation order, newest first, and at
// least one conversation always exists.
//
// Store is not safe for concurrent use; all access happens on the UI
// event loop.
type Store struct {
	kv            Persistence
	conversations []*Conversation
	activeID      string
	lastID        int64
}

// NewStore loads the persisted conversations, or creates the first one.
//
// Malformed persisted entries are dropped with a log line rather than
// failing the load; a damaged store degrades to a fresh conversation.
func NewStore(kv Persistence) (*Store, error) {
	s := &Store{kv: kv}

	if err := s.load(); err != nil {
		return nil, err
	}
	if len(s.conversations) == 0 {
		if _, err := s.Create(); err != nil {
			return nil, err
		}
		return s, nil
	}

	if s.findIndex(s.activeID) < 0 {
		s.activeID = s.conversations[0].ID
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) load() error {
	raw, ok, err := s.kv.Get(state.KeyChats)
	if err != nil {
		return fmt.Errorf("failed to load conversations: %w", err)
	}
	if ok {
		var stored []*Conversation
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			logging.Warn("discarding undecodable conversation store", "error", err)
		} else {
			for _, c := range stored {
				if c == nil || c.ID == "" {
					logging.Warn("dropping malformed persisted conversation")
					continue
				}
				s.conversations = append(s.conversations, c)
				if n, err := strconv.ParseInt(c.ID, 10, 64); err == nil && n > s.lastID {
					s.lastID = n
				}
			}
		}
	}

	active, ok, err := s.kv.Get(state.KeyActiveChatID)
	if err != nil {
		return fmt.Errorf("failed to load active conversation id: %w", err)
	}
	if ok {
		s.activeID = active
	}
	return nil
}

// nextID returns a generation-ordered unique id. Millisecond timestamps
// collide under rapid creation, so the counter is forced monotonic.
func (s *Store) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Create inserts a fresh conversation with the seed bot message, makes it
// active, and persists.
func (s *Store) Create() (*Conversation, error) {
	conv := &Conversation{
		ID:       s.nextID(),
		Title:    DefaultTitle,
		Messages: []Message{{Sender: SenderBot, Text: SeedMessage}},
	}

	// Newest first
	s.conversations = append([]*Conversation{conv}, s.conversations...)
	s.activeID = conv.ID

	if err := s.persist(); err != nil {
		return nil, err
	}
	return conv, nil
}

// Select makes the identified conversation active and persists.
func (s *Store) Select(id string) error {
	if s.findIndex(id) < 0 {
		return ErrNotFound
	}
	s.activeID = id
	return s.persist()
}

// TogglePin flips the pin flag without changing the active selection.
func (s *Store) TogglePin(id string) error {
	i := s.findIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.conversations[i].Pinned = !s.conversations[i].Pinned
	return s.persist()
}

// Delete removes a conversation. When the active one goes, the first
// remaining conversation in stored order takes over; when none remain, a
// fresh conversation is created (the store is never empty).
func (s *Store) Delete(id string) error {
	i := s.findIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.conversations = append(s.conversations[:i], s.conversations[i+1:]...)

	if len(s.conversations) == 0 {
		_, err := s.Create() // persists
		return err
	}
	if s.activeID == id {
		s.activeID = s.conversations[0].ID
	}
	return s.persist()
}

// Append adds a message to the identified conversation and persists.
//
// The first user-authored message of a still-default-titled conversation
// also sets the title to its first 30 characters.
func (s *Store) Append(id, sender, text string, sources []Source) error {
	i := s.findIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	conv := s.conversations[i]

	if sender == SenderUser && !conv.hasUserMessage() && !conv.titled() {
		conv.Title = deriveTitle(text)
	}
	conv.Messages = append(conv.Messages, Message{Sender: sender, Text: text, Sources: sources})
	return s.persist()
}

// Active returns the active conversation.
func (s *Store) Active() *Conversation {
	if i := s.findIndex(s.activeID); i >= 0 {
		return s.conversations[i]
	}
	// Unreachable by invariant, but never return nil to the render path.
	return s.conversations[0]
}

// ActiveID returns the active conversation's id.
func (s *Store) ActiveID() string {
	return s.activeID
}

// Get returns the conversation with the given id, or nil.
func (s *Store) Get(id string) *Conversation {
	if i := s.findIndex(id); i >= 0 {
		return s.conversations[i]
	}
	return nil
}

// Len returns how many conversations exist.
func (s *Store) Len() int {
	return len(s.conversations)
}

// Ordered returns conversations for display: pinned first, then unpinned,
// stable within each group (stored creation order, no recency tiebreak).
func (s *Store) Ordered() []*Conversation {
	ordered := make([]*Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		if c.Pinned {
			ordered = append(ordered, c)
		}
	}
	for _, c := range s.conversations {
		if !c.Pinned {
			ordered = append(ordered, c)
		}
	}
	return ordered
}

func (s *Store) findIndex(id string) int {
	for i, c := range s.conversations {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// persist re-serializes the full store. Writes are synchronous: by the
// time a mutating operation returns, the state is on disk.
func (s *Store) persist() error {
	data, err := json.Marshal(s.conversations)
	if err != nil {
		return fmt.Errorf("failed to encode conversations: %w", err)
	}
	if err := s.kv.Set(state.KeyChats, string(data)); err != nil {
		return fmt.Errorf("failed to persist conversations: %w", err)
	}
	if err := s.kv.Set(state.KeyActiveChatID, s.activeID); err != nil {
		return fmt.Errorf("failed to persist active conversation id: %w", err)
	}
	return nil
}

package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dmifsud/cyberwatch/internal/gateway"
	"github.com/dmifsud/cyberwatch/internal/logging"
)

// TurnState tracks one send-message exchange: Sending while the remote
// call is in flight, then Completed or Failed. Skipped means the input was
// rejected before anything happened.
type TurnState int

const (
	TurnSkipped TurnState = iota
	TurnSending
	TurnCompleted
	TurnFailed
)

// Turn is one send-message exchange. It carries the originating
// conversation id and a unique request id for the whole round trip, so a
// reply always lands in the conversation that asked for it - never in
// whichever conversation happens to be active when the response arrives.
type Turn struct {
	RequestID      string
	ConversationID string
	Text           string
	State          TurnState
	Reply          *Message
}

// Querier is the slice of the gateway the exchange needs.
type Querier interface {
	SendQuery(ctx context.Context, query, region string) (*gateway.QueryResponse, error)
}

// Exchange orchestrates send-message turns against the backend.
type Exchange struct {
	store   *Store
	backend Querier
	region  string
}

// NewExchange creates an exchange controller over the given store.
func NewExchange(store *Store, backend Querier, region string) *Exchange {
	return &Exchange{store: store, backend: backend, region: region}
}

// Begin starts a turn: it validates the input and optimistically appends
// the user message to the conversation.
//
// Empty or whitespace-only input is a no-op (TurnSkipped), not an error:
// no message is appended and no network call will be made. The returned
// turn is in TurnSending; the caller shows its transient typing indicator
// (which is UI-only and never persisted) and then calls Resolve.
func (x *Exchange) Begin(convID, text string) (Turn, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Turn{State: TurnSkipped}, nil
	}

	if err := x.store.Append(convID, SenderUser, trimmed, nil); err != nil {
		return Turn{}, err
	}

	return Turn{
		RequestID:      uuid.NewString(),
		ConversationID: convID,
		Text:           trimmed,
		State:          TurnSending,
	}, nil
}

// Resolve performs the remote call for a begun turn and appends the
// outcome to the originating conversation.
//
// A transport failure is recovered locally: the fixed offline-guidance
// text is appended as a regular bot message and the turn reports
// TurnFailed. Resolve only errors when the originating conversation has
// been deleted while the request was in flight - then the reply is
// dropped, since there is no history left to attach it to.
func (x *Exchange) Resolve(ctx context.Context, t Turn) (Turn, error) {
	if t.State != TurnSending {
		return t, nil
	}

	resp, err := x.backend.SendQuery(ctx, t.Text, x.region)
	if err != nil {
		if !errors.Is(err, gateway.ErrUnreachable) {
			logging.Warn("unexpected query error", "error", err)
		}
		logging.Info("query failed, appending offline guidance", "request_id", t.RequestID)
		t.State = TurnFailed
		t.Reply = &Message{Sender: SenderBot, Text: OfflineMessage}
	} else {
		t.State = TurnCompleted
		t.Reply = &Message{Sender: SenderBot, Text: resp.Answer, Sources: convertSources(resp.Sources)}
	}

	if err := x.store.Append(t.ConversationID, t.Reply.Sender, t.Reply.Text, t.Reply.Sources); err != nil {
		logging.Warn("dropping reply for deleted conversation", "conversation_id", t.ConversationID)
		return t, err
	}
	return t, nil
}

func convertSources(in []gateway.Source) []Source {
	if len(in) == 0 {
		return nil
	}
	out := make([]Source, len(in))
	for i, s := range in {
		out[i] = Source{URL: s.URL, Title: s.Title}
	}
	return out
}

package messaging

import (
	"strconv"
	"time"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

// EventPayload is the wire form of a LedgerEvent.
// Amounts and ids are decimal strings so consumers never lose precision.
type EventPayload struct {
	ItemID       string            `json:"item_id,omitempty"`
	HighlightID  string            `json:"highlight_id,omitempty"`
	Actors       map[string]string `json:"actors"`
	Amount       string            `json:"amount,omitempty"`
	TipID        string            `json:"tip_id,omitempty"`
	TokenID      string            `json:"token_id,omitempty"`
	PermanentRef string            `json:"permanent_ref,omitempty"`
}

// Envelope wraps a payload with its identity and kind
type Envelope struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Timestamp time.Time    `json:"timestamp"`
	Data      EventPayload `json:"data"`
}

// NewEnvelope converts a ledger event to its wire form
func NewEnvelope(event *domain.LedgerEvent) Envelope {
	data := EventPayload{
		ItemID:      string(event.ItemID),
		HighlightID: string(event.HighlightID),
		Actors:      make(map[string]string, len(event.Actors)),
	}
	for role, identity := range event.Actors {
		data.Actors[role] = string(identity)
	}
	if event.Amount != nil {
		data.Amount = event.Amount.String()
	}
	if event.TipID > 0 {
		data.TipID = strconv.FormatUint(event.TipID, 10)
	}
	if event.TokenID > 0 {
		data.TokenID = strconv.FormatUint(event.TokenID, 10)
	}
	if event.PermanentRef != nil {
		data.PermanentRef = *event.PermanentRef
	}

	return Envelope{
		EventID:   event.ID,
		EventType: string(event.Kind),
		Timestamp: event.Timestamp.UTC(),
		Data:      data,
	}
}

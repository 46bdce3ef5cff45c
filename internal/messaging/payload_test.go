package messaging_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/messaging"
)

func TestNewEnvelope(t *testing.T) {
	ref := "ar://tx-1"
	amount, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	event := &domain.LedgerEvent{
		ID:     "01JG8XAMPLE1234567890123456",
		Kind:   domain.EventKindTipRecorded,
		ItemID: "article-1",
		Actors: map[string]domain.Identity{
			domain.ActorTipper:  "alice",
			domain.ActorCreator: "bob",
		},
		Amount:       amount,
		TipID:        7,
		PermanentRef: &ref,
		Timestamp:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.FixedZone("ICT", 7*3600)),
	}

	env := messaging.NewEnvelope(event)
	assert.Equal(t, event.ID, env.EventID)
	assert.Equal(t, "tip.recorded", env.EventType)
	assert.Equal(t, time.UTC, env.Timestamp.Location())
	assert.Equal(t, "170141183460469231731687303715884105727", env.Data.Amount)
	assert.Equal(t, "7", env.Data.TipID)
	assert.Empty(t, env.Data.TokenID)
	assert.Equal(t, "ar://tx-1", env.Data.PermanentRef)
	assert.Equal(t, map[string]string{"tipper": "alice", "creator": "bob"}, env.Data.Actors)
}

func TestNewEnvelopeTransfer(t *testing.T) {
	env := messaging.NewEnvelope(&domain.LedgerEvent{
		Kind:    domain.EventKindCollectibleTransferred,
		TokenID: 3,
		Actors: map[string]domain.Identity{
			domain.ActorFrom: "alice",
			domain.ActorTo:   "carol",
		},
	})
	assert.Equal(t, "3", env.Data.TokenID)
	assert.Empty(t, env.Data.Amount)
	assert.Empty(t, env.Data.PermanentRef)
}

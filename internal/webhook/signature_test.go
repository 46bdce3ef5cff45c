package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/messaging"
	"github.com/feral-file/ff-tipping-ledger/internal/mocks"
	"github.com/feral-file/ff-tipping-ledger/internal/webhook"
)

var fixedNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func testEvent(id string) webhook.WebhookEvent {
	return webhook.WebhookEvent{
		EventID:   id,
		EventType: "tip.recorded",
		Timestamp: fixedNow,
		Data: messaging.EventPayload{
			ItemID: "article-1",
			Actors: map[string]string{"tipper": "alice", "creator": "bob"},
			Amount: "60000000",
			TipID:  "1",
		},
	}
}

func fixedClock(ctrl *gomock.Controller) *mocks.MockClock {
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	return clock
}

func TestGenerateSignedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clock := fixedClock(ctrl)
	jsonAdapter := adapter.NewJSON()

	t.Run("generates valid payload and signature", func(t *testing.T) {
		secret := "test-secret-key"
		event := testEvent("01JG8XAMPLE1234567890123456")

		payload, signature, timestamp, err := webhook.GenerateSignedPayload(secret, event, jsonAdapter, clock)
		require.NoError(t, err)
		assert.Equal(t, fixedNow.Unix(), timestamp)

		// Verify payload is valid JSON
		var parsedEvent webhook.WebhookEvent
		require.NoError(t, json.Unmarshal(payload, &parsedEvent))
		assert.Equal(t, event.EventID, parsedEvent.EventID)
		assert.Equal(t, event.Data.Amount, parsedEvent.Data.Amount)

		// Verify signature can be validated
		signaturePayload := fmt.Sprintf("%d.%s.%s", timestamp, event.EventID, string(payload))
		h := hmac.New(sha256.New, []byte(secret))
		h.Write([]byte(signaturePayload))
		assert.Equal(t, "sha256="+hex.EncodeToString(h.Sum(nil)), signature)
		assert.True(t, webhook.VerifySignature(secret, timestamp, event.EventID, payload, signature))
	})

	t.Run("payload is canonical", func(t *testing.T) {
		payload, _, _, err := webhook.GenerateSignedPayload("s", testEvent("01JG8XAMPLE1234567890123456"), jsonAdapter, clock)
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"actors":{"creator":"bob","tipper":"alice"}`)
		assert.NotContains(t, string(payload), " ")
	})

	t.Run("signature includes event_id to prevent replay", func(t *testing.T) {
		_, signature1, _, err := webhook.GenerateSignedPayload("s", testEvent("01JG8XAMPLE1111111111111111"), jsonAdapter, clock)
		require.NoError(t, err)
		_, signature2, _, err := webhook.GenerateSignedPayload("s", testEvent("01JG8XAMPLE2222222222222222"), jsonAdapter, clock)
		require.NoError(t, err)

		assert.NotEqual(t, signature1, signature2, "Different event IDs should produce different signatures")
	})

	t.Run("different secrets produce different signatures", func(t *testing.T) {
		event := testEvent("01JG8XAMPLE1234567890123456")
		payload, signature1, timestamp, err := webhook.GenerateSignedPayload("secret1", event, jsonAdapter, clock)
		require.NoError(t, err)
		_, signature2, _, err := webhook.GenerateSignedPayload("secret2", event, jsonAdapter, clock)
		require.NoError(t, err)

		assert.NotEqual(t, signature1, signature2)
		assert.False(t, webhook.VerifySignature("secret2", timestamp, event.EventID, payload, signature1))
	})

	t.Run("tampered payload fails verification", func(t *testing.T) {
		event := testEvent("01JG8XAMPLE1234567890123456")
		payload, signature, timestamp, err := webhook.GenerateSignedPayload("s", event, jsonAdapter, clock)
		require.NoError(t, err)

		tampered := []byte(string(payload) + " ")
		assert.False(t, webhook.VerifySignature("s", timestamp, event.EventID, tampered, signature))
		assert.False(t, webhook.VerifySignature("s", timestamp+1, event.EventID, payload, signature))
	})
}

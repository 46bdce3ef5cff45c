package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
)

// GenerateSignedPayload serializes event as canonical JSON and signs it with HMAC-SHA256.
// Returns the JSON payload, signature header value, timestamp, and any error
func GenerateSignedPayload(secret string, event WebhookEvent, json adapter.JSON, clock adapter.Clock) (payload []byte, signature string, timestamp int64, err error) {
	payload, err = json.MarshalCanonical(event)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to marshal event: %w", err)
	}

	timestamp = clock.Now().Unix()
	signature = Sign(secret, timestamp, event.EventID, payload)

	return payload, signature, timestamp, nil
}

// Sign computes "sha256=<hex>" over "{timestamp}.{event_id}.{payload}"
func Sign(secret string, timestamp int64, eventID string, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(strconv.FormatInt(timestamp, 10)))
	h.Write([]byte("."))
	h.Write([]byte(eventID))
	h.Write([]byte("."))
	h.Write(payload)

	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}

// VerifySignature checks a signature header in constant time
func VerifySignature(secret string, timestamp int64, eventID string, payload []byte, signature string) bool {
	expected := Sign(secret, timestamp, eventID, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

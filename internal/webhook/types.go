package webhook

import (
	"time"

	"github.com/feral-file/ff-tipping-ledger/internal/messaging"
)

// Header names set on every delivery
const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderEventID   = "X-Webhook-Event-ID"
	HeaderEventType = "X-Webhook-Event-Type"
	HeaderTimestamp = "X-Webhook-Timestamp"
	HeaderUserAgent = "User-Agent"

	UserAgent = "FF-Tipping-Ledger-Webhook/1.0"
)

// maxLoggedBody caps how much of an endpoint response is kept for logs
const maxLoggedBody = 4 * 1024

// WebhookEvent is the body delivered to the webhook endpoint
type WebhookEvent = messaging.Envelope

// Config holds the webhook endpoint and its delivery policy
type Config struct {
	URL    string
	Secret string
	// InitialInterval is the first retry delay
	InitialInterval time.Duration
	// MaxInterval caps a single retry delay
	MaxInterval time.Duration
	// MaxElapsedTime bounds the whole delivery including retries
	MaxElapsedTime time.Duration
}

// DeliveryResult represents the result of a webhook delivery attempt
type DeliveryResult struct {
	// Success indicates whether the delivery was successful
	Success bool
	// StatusCode is the HTTP status code returned by the webhook endpoint
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body string
	// Error contains error details if delivery failed
	Error string
}

package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
	"github.com/feral-file/ff-tipping-ledger/internal/messaging"
)

type publisher struct {
	cfg    Config
	client adapter.HTTPClient
	json   adapter.JSON
	clock  adapter.Clock
}

// NewPublisher creates a publisher that POSTs signed ledger events to a single endpoint
func NewPublisher(cfg Config, client adapter.HTTPClient, json adapter.JSON, clock adapter.Clock) messaging.Publisher {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 500 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 10 * time.Second
	}
	if cfg.MaxElapsedTime <= 0 {
		cfg.MaxElapsedTime = time.Minute
	}

	return &publisher{
		cfg:    cfg,
		client: client,
		json:   json,
		clock:  clock,
	}
}

func (p *publisher) Name() string {
	return "webhook"
}

// PublishEvent delivers the event, retrying network errors, 429 and 5xx responses with exponential backoff
func (p *publisher) PublishEvent(ctx context.Context, event *domain.LedgerEvent) error {
	envelope := messaging.NewEnvelope(event)
	attempt := 0
	var result DeliveryResult

	operation := func() error {
		attempt++

		// re-signed per attempt so the timestamp stays fresh
		payload, signature, timestamp, err := GenerateSignedPayload(p.cfg.Secret, envelope, p.json, p.clock)
		if err != nil {
			return backoff.Permanent(err)
		}

		result = p.deliver(ctx, envelope, payload, signature, timestamp)
		if result.Success {
			return nil
		}

		err = errors.New(result.Error)
		if result.StatusCode == 0 || result.StatusCode == http.StatusTooManyRequests || result.StatusCode >= http.StatusInternalServerError {
			return err
		}
		return backoff.Permanent(err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.cfg.InitialInterval
	b.MaxInterval = p.cfg.MaxInterval
	b.MaxElapsedTime = p.cfg.MaxElapsedTime

	err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Webhook delivery failed, retrying",
			zap.Error(err),
			zap.String("eventID", event.ID),
			zap.Int("attempt", attempt),
			zap.Duration("next", next))
	})
	if err != nil {
		return fmt.Errorf("webhook delivery failed after %d attempts: %w", attempt, err)
	}

	logger.DebugCtx(ctx, "Webhook delivered",
		zap.String("eventID", event.ID),
		zap.Int("status", result.StatusCode),
		zap.Int("attempt", attempt))
	return nil
}

// deliver performs one signed POST
func (p *publisher) deliver(ctx context.Context, event WebhookEvent, payload []byte, signature string, timestamp int64) DeliveryResult {
	headers := map[string]string{
		HeaderSignature: signature,
		HeaderEventID:   event.EventID,
		HeaderEventType: event.EventType,
		HeaderTimestamp: strconv.FormatInt(timestamp, 10),
		HeaderUserAgent: UserAgent,
	}

	status, body, err := p.client.Post(ctx, p.cfg.URL, headers, payload)
	if err != nil {
		return DeliveryResult{Error: err.Error()}
	}
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody]
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return DeliveryResult{
			StatusCode: status,
			Body:       string(body),
			Error:      fmt.Sprintf("webhook endpoint returned status %d", status),
		}
	}

	return DeliveryResult{Success: true, StatusCode: status, Body: string(body)}
}

func (p *publisher) Close() {}

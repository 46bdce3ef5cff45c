package webhook_test

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/mocks"
	"github.com/feral-file/ff-tipping-ledger/internal/webhook"
)

const hookURL = "https://hooks.example/ledger"

func testConfig() webhook.Config {
	return webhook.Config{
		URL:             hookURL,
		Secret:          "test-secret-key",
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxElapsedTime:  time.Second,
	}
}

func ledgerEvent() *domain.LedgerEvent {
	return &domain.LedgerEvent{
		ID:        "01JG8XAMPLE1234567890123456",
		Kind:      domain.EventKindTipRecorded,
		ItemID:    "article-1",
		Actors:    map[string]domain.Identity{domain.ActorTipper: "alice"},
		Amount:    big.NewInt(60_000_000),
		TipID:     1,
		Timestamp: fixedNow,
	}
}

func TestPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers signed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockHTTPClient(ctrl)
		pub := webhook.NewPublisher(testConfig(), client, adapter.NewJSON(), fixedClock(ctrl))
		assert.Equal(t, "webhook", pub.Name())

		client.EXPECT().Post(ctx, hookURL, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body []byte) (int, []byte, error) {
				ts, err := strconv.ParseInt(headers[webhook.HeaderTimestamp], 10, 64)
				assert.NoError(t, err)
				assert.Equal(t, "tip.recorded", headers[webhook.HeaderEventType])
				assert.Equal(t, "01JG8XAMPLE1234567890123456", headers[webhook.HeaderEventID])
				assert.True(t, webhook.VerifySignature("test-secret-key", ts, headers[webhook.HeaderEventID], body, headers[webhook.HeaderSignature]))
				return http.StatusOK, []byte(`ok`), nil
			})

		assert.NoError(t, pub.PublishEvent(ctx, ledgerEvent()))
	})

	t.Run("retries server errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockHTTPClient(ctrl)
		pub := webhook.NewPublisher(testConfig(), client, adapter.NewJSON(), fixedClock(ctrl))

		gomock.InOrder(
			client.EXPECT().Post(ctx, hookURL, gomock.Any(), gomock.Any()).Return(0, nil, errors.New("connection refused")),
			client.EXPECT().Post(ctx, hookURL, gomock.Any(), gomock.Any()).Return(http.StatusServiceUnavailable, nil, nil),
			client.EXPECT().Post(ctx, hookURL, gomock.Any(), gomock.Any()).Return(http.StatusNoContent, nil, nil),
		)

		assert.NoError(t, pub.PublishEvent(ctx, ledgerEvent()))
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockHTTPClient(ctrl)
		pub := webhook.NewPublisher(testConfig(), client, adapter.NewJSON(), fixedClock(ctrl))

		client.EXPECT().Post(ctx, hookURL, gomock.Any(), gomock.Any()).Return(http.StatusBadRequest, []byte(`bad`), nil).Times(1)

		err := pub.PublishEvent(ctx, ledgerEvent())
		assert.ErrorContains(t, err, "status 400")
	})
}

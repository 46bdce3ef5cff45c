package emitter_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/emitter"
	"github.com/feral-file/ff-tipping-ledger/internal/mocks"
)

var now = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func TestEmitFansOutToEveryPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now)

	first := mocks.NewMockPublisher(ctrl)
	second := mocks.NewMockPublisher(ctrl)

	var mu sync.Mutex
	var received []*domain.LedgerEvent
	record := func(_ context.Context, event *domain.LedgerEvent) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, event)
		return nil
	}

	first.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).DoAndReturn(record)
	second.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, event *domain.LedgerEvent) error {
		_ = record(ctx, event)
		return errors.New("sink down")
	})
	second.EXPECT().Name().Return("second").AnyTimes()
	first.EXPECT().Close()
	second.EXPECT().Close()

	e := emitter.NewEmitter(emitter.Config{WorkerPoolSize: 2}, clock, nil, first, second)

	ctx, cancel := context.WithCancel(context.Background())
	e.Emit(ctx, &domain.LedgerEvent{Kind: domain.EventKindTipRecorded, ItemID: "article-1"})
	cancel()
	e.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, received, 2)
	for _, event := range received {
		assert.Len(t, event.ID, 26)
		assert.Equal(t, now, event.Timestamp)
	}
}

func TestEmitKeepsExistingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pub := mocks.NewMockPublisher(ctrl)
	event := &domain.LedgerEvent{ID: "fixed", Kind: domain.EventKindCollectibleMinted, Timestamp: now}

	pub.EXPECT().PublishEvent(gomock.Any(), event).Return(nil)
	pub.EXPECT().Close()

	e := emitter.NewEmitter(emitter.Config{}, mocks.NewMockClock(ctrl), nil, pub)
	e.Emit(context.Background(), event)
	e.Emit(context.Background(), nil)
	e.Close()

	assert.Equal(t, "fixed", event.ID)
}

func TestNoopEmitter(t *testing.T) {
	e := emitter.NewEmitter(emitter.Config{}, nil, nil)
	assert.NotPanics(t, func() {
		e.Emit(context.Background(), &domain.LedgerEvent{})
		e.Close()
	})
}

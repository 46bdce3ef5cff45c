package metrics

import (
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

func TestReason(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{domain.ErrBelowMinimum, "below_minimum"},
		{fmt.Errorf("wrapped: %w", domain.ErrTransferFailed), "transfer_failed"},
		{domain.ErrContractPaused, "paused"},
		{fmt.Errorf("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reason(tt.err))
		})
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *LedgerMetrics
	assert.NotPanics(t, func() {
		m.ObserveTip("item", big.NewInt(1), big.NewInt(1))
		m.ObserveCollectible("mint")
		m.ObserveFailure("tip", domain.ErrBelowMinimum)
		m.ObservePublishFailure("webhook")
		m.ObserveHTTPRequest("GET", "/health", 200, time.Millisecond)
	})
}

func TestLedgerCounters(t *testing.T) {
	m := Ledger()
	assert.Same(t, m, Ledger())

	before := testutil.ToFloat64(m.tipsRecorded.WithLabelValues("highlight"))
	m.ObserveTip("highlight", big.NewInt(975_000), big.NewInt(25_000))
	assert.Equal(t, before+1, testutil.ToFloat64(m.tipsRecorded.WithLabelValues("highlight")))

	beforeFailures := testutil.ToFloat64(m.operationFailures.WithLabelValues("mint", "already_minted"))
	m.ObserveFailure("mint", domain.ErrAlreadyMinted)
	m.ObserveFailure("mint", nil)
	assert.Equal(t, beforeFailures+1, testutil.ToFloat64(m.operationFailures.WithLabelValues("mint", "already_minted")))
}

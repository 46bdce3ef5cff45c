package metrics

import (
	"errors"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

// LedgerMetrics holds the Prometheus collectors of the tipping ledger.
// All methods are safe to call on a nil receiver.
type LedgerMetrics struct {
	tipsRecorded      *prometheus.CounterVec
	tipAmount         *prometheus.CounterVec
	collectibles      *prometheus.CounterVec
	operationFailures *prometheus.CounterVec
	publishFailures   *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

var (
	ledgerOnce     sync.Once
	ledgerRegistry *LedgerMetrics
)

// Ledger returns the process-wide metrics registered with the default Prometheus registry
func Ledger() *LedgerMetrics {
	ledgerOnce.Do(func() {
		ledgerRegistry = &LedgerMetrics{
			tipsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "ff_tipping",
				Name:      "tips_recorded_total",
				Help:      "Count of accepted tips by stream.",
			}, []string{"stream"}),
			tipAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "ff_tipping",
				Name:      "tip_amount_total",
				Help:      "Sum of accepted tip amounts by share (approximate, float).",
			}, []string{"share"}),
			collectibles: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "ff_tipping",
				Name:      "collectible_operations_total",
				Help:      "Count of collectible mints and transfers.",
			}, []string{"operation"}),
			operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "ff_tipping",
				Name:      "operation_failures_total",
				Help:      "Count of rejected ledger operations by operation and reason.",
			}, []string{"operation", "reason"}),
			publishFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "ff_tipping",
				Name:      "event_publish_failures_total",
				Help:      "Number of failed ledger event deliveries by publisher.",
			}, []string{"publisher"}),
			httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "ff_tipping",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			}, []string{"method", "path", "status"}),
			httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "ff_tipping",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			}, []string{"method", "path"}),
		}
		prometheus.MustRegister(
			ledgerRegistry.tipsRecorded,
			ledgerRegistry.tipAmount,
			ledgerRegistry.collectibles,
			ledgerRegistry.operationFailures,
			ledgerRegistry.publishFailures,
			ledgerRegistry.httpRequests,
			ledgerRegistry.httpDuration,
		)
	})
	return ledgerRegistry
}

// ObserveTip counts an accepted tip on the item or highlight stream
func (m *LedgerMetrics) ObserveTip(stream string, creatorShare, platformFee *big.Int) {
	if m == nil {
		return
	}
	m.tipsRecorded.WithLabelValues(stream).Inc()
	m.tipAmount.WithLabelValues("creator").Add(toFloat(creatorShare))
	m.tipAmount.WithLabelValues("platform").Add(toFloat(platformFee))
}

// ObserveCollectible counts a mint or transfer
func (m *LedgerMetrics) ObserveCollectible(operation string) {
	if m == nil {
		return
	}
	m.collectibles.WithLabelValues(operation).Inc()
}

// ObserveFailure counts a rejected operation, labelled by the sentinel it failed with
func (m *LedgerMetrics) ObserveFailure(operation string, err error) {
	if m == nil || err == nil {
		return
	}
	m.operationFailures.WithLabelValues(operation, Reason(err)).Inc()
}

func (m *LedgerMetrics) ObservePublishFailure(publisher string) {
	if m == nil {
		return
	}
	if publisher == "" {
		publisher = "unknown"
	}
	m.publishFailures.WithLabelValues(publisher).Inc()
}

// ObserveHTTPRequest records one handled request; path is the route template, not the raw URL
func (m *LedgerMetrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if path == "" {
		path = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

var reasons = []struct {
	err    error
	reason string
}{
	{domain.ErrUnauthorized, "unauthorized"},
	{domain.ErrAlreadyInitialized, "already_initialized"},
	{domain.ErrNotInitialized, "not_initialized"},
	{domain.ErrBelowMinimum, "below_minimum"},
	{domain.ErrBelowThreshold, "below_threshold"},
	{domain.ErrAlreadyMinted, "already_minted"},
	{domain.ErrTokenNotFound, "token_not_found"},
	{domain.ErrNotOwner, "not_owner"},
	{domain.ErrFeeTooHigh, "fee_too_high"},
	{domain.ErrContractPaused, "paused"},
	{domain.ErrTransferFailed, "transfer_failed"},
	{domain.ErrWithdrawUnsupported, "withdraw_unsupported"},
	{domain.ErrInvalidArgument, "invalid_argument"},
	{domain.ErrRegistryDesync, "registry_desync"},
}

// Reason maps an error to a low-cardinality metric label
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "internal"
}

func toFloat(v *big.Int) float64 {
	if v == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	journalFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_journal",
		Name:      "flush_total",
		Help:      "Count of journal flushes.",
	}, []string{"status"})

	journalFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_journal",
		Name:      "flush_duration_seconds",
		Help:      "Duration of a journal flush.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"status"})

	journalFlushEntries = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_journal",
		Name:      "flush_entries",
		Help:      "Number of queued deltas written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	journalDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_journal",
		Name:      "dropped_total",
		Help:      "Count of deltas that could not be queued.",
	}, []string{"kind"})
)

// WalletJournal tracks metrics for the ledger journal.
type WalletJournal struct{}

// NewWalletJournal constructs a WalletJournal collector.
func NewWalletJournal() *WalletJournal {
	return &WalletJournal{}
}

// ObserveFlush records one batch written to storage.
func (m WalletJournal) ObserveFlush(err error, entries int, started time.Time) {
	status := statusOf(err)
	journalFlushTotal.WithLabelValues(status).Inc()
	journalFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	journalFlushEntries.Observe(float64(entries))
}

// ObserveDropped counts a delta that never reached the queue.
func (m WalletJournal) ObserveDropped(kind string) {
	journalDroppedTotal.WithLabelValues(kind).Inc()
}

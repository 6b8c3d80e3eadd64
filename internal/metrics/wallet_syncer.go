package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncerPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_syncer",
		Name:      "pass_total",
		Help:      "Count of sync passes.",
	}, []string{"network", "status"})

	syncerPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_syncer",
		Name:      "pass_duration_seconds",
		Help:      "Duration of a sync pass.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"network", "status"})

	syncerPassBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_syncer",
		Name:      "pass_blocks",
		Help:      "Number of blocks scanned per sync pass.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"network"})

	syncerBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_syncer",
		Name:      "block_total",
		Help:      "Count of blocks applied to the wallet.",
	}, []string{"network", "status"})

	syncerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_syncer",
		Name:      "block_duration_seconds",
		Help:      "Duration of scanning and applying one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	syncerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_syncer",
		Name:      "height",
		Help:      "Last block height applied to the wallet.",
	}, []string{"network"})

	syncerRollbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_syncer",
		Name:      "rollback_total",
		Help:      "Count of chain reorganizations handled.",
	}, []string{"network"})

	syncerRollbackDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_syncer",
		Name:      "rollback_depth",
		Help:      "Number of blocks undone per reorganization.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	}, []string{"network"})
)

// WalletSyncer tracks metrics for the wallet sync engine.
type WalletSyncer struct {
	network string
}

// NewWalletSyncer constructs a WalletSyncer collector.
func NewWalletSyncer(network string) *WalletSyncer {
	return &WalletSyncer{network: orUnknown(network)}
}

// ObservePass records a sync pass outcome, duration and size.
func (m WalletSyncer) ObservePass(err error, blocks uint64, started time.Time) {
	status := statusOf(err)
	syncerPassTotal.WithLabelValues(m.network, status).Inc()
	syncerPassDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	syncerPassBlocks.WithLabelValues(m.network).Observe(float64(blocks))
}

// ObserveBlock records a single block application.
func (m WalletSyncer) ObserveBlock(err error, height uint64, started time.Time) {
	status := statusOf(err)
	syncerBlockTotal.WithLabelValues(m.network, status).Inc()
	syncerBlockDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	if err == nil {
		syncerHeight.WithLabelValues(m.network).Set(float64(height))
	}
}

// ObserveRollback records a reorganization of the given depth.
func (m WalletSyncer) ObserveRollback(depth uint64) {
	syncerRollbackTotal.WithLabelValues(m.network).Inc()
	syncerRollbackDepth.WithLabelValues(m.network).Observe(float64(depth))
}

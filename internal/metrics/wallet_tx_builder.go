package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	txBuilderCreateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_tx_builder",
		Name:      "create_total",
		Help:      "Count of transaction build attempts.",
	}, []string{"network", "relay", "status"})

	txBuilderCreateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_tx_builder",
		Name:      "create_duration_seconds",
		Help:      "Duration of building and optionally relaying a transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "relay", "status"})

	txBuilderInputs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_tx_builder",
		Name:      "inputs",
		Help:      "Number of inputs per built transaction.",
		Buckets:   prometheus.LinearBuckets(1, 1, 16),
	}, []string{"network"})
)

// WalletTxBuilder tracks metrics for transaction creation.
type WalletTxBuilder struct {
	network string
}

// NewWalletTxBuilder constructs a WalletTxBuilder collector.
func NewWalletTxBuilder(network string) *WalletTxBuilder {
	return &WalletTxBuilder{network: orUnknown(network)}
}

// ObserveCreateTx records one CreateTx call.
func (m WalletTxBuilder) ObserveCreateTx(err error, relay bool, inputs int, started time.Time) {
	status := statusOf(err)
	txBuilderCreateTotal.WithLabelValues(m.network, strconv.FormatBool(relay), status).Inc()
	txBuilderCreateDuration.WithLabelValues(m.network, strconv.FormatBool(relay), status).Observe(time.Since(started).Seconds())
	if err == nil {
		txBuilderInputs.WithLabelValues(m.network).Observe(float64(inputs))
	}
}

package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the AMM module
type Metrics struct {
	SwapsTotal        *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	SwapFeesCollected *prometheus.CounterVec

	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec

	PoolsTotal    prometheus.Gauge
	PoolCreations prometheus.Counter

	BridgeSwapsInitiated prometheus.Counter
	BridgeSwapsCompleted prometheus.Counter
	BridgeSwapsCancelled prometheus.Counter
	BridgeEscrowLocked   *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers AMM metrics. Registration with the
// default registry must happen once per process, hence the singleton.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool_id", "token_in", "token_out"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pool_id", "token_in"},
			),
			SwapFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "swap_fees_collected_total",
					Help:      "Total fees collected from swaps in base units",
				},
				[]string{"pool_id", "kind"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity added in base units",
				},
				[]string{"pool_id", "token"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity removed in base units",
				},
				[]string{"pool_id", "token"},
			),
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "pools_total",
					Help:      "Current number of pools",
				},
			),
			PoolCreations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "pool_creations_total",
					Help:      "Total number of pools ever created",
				},
			),
			BridgeSwapsInitiated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "bridge_swaps_initiated_total",
					Help:      "Total cross-chain swaps initiated",
				},
			),
			BridgeSwapsCompleted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "bridge_swaps_completed_total",
					Help:      "Total cross-chain swaps completed",
				},
			),
			BridgeSwapsCancelled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "bridge_swaps_cancelled_total",
					Help:      "Total cross-chain swaps cancelled after expiry",
				},
			),
			BridgeEscrowLocked: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "amm",
					Name:      "bridge_escrow_locked_total",
					Help:      "Total tokens locked into bridge escrow in base units",
				},
				[]string{"token", "target_chain"},
			),
		}
	})
	return metrics
}

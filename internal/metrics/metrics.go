package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreMutations counts state transitions by collection and operation.
	StoreMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homehub_store_mutations_total",
			Help: "Total number of store mutations applied",
		},
		[]string{"collection", "op"},
	)

	// WSConnections tracks currently registered websocket listeners.
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "homehub_ws_connections",
			Help: "Number of websocket listeners currently connected",
		},
	)

	// BroadcastsSent counts frames successfully written during fan-out.
	BroadcastsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "homehub_broadcasts_sent_total",
			Help: "Total scene broadcast frames delivered to listeners",
		},
	)

	// BroadcastsDropped counts listeners skipped during fan-out.
	BroadcastsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "homehub_broadcasts_dropped_total",
			Help: "Total scene broadcast frames dropped on dead connections",
		},
	)

	// ThreatFetches counts external feed fetches by source and outcome.
	ThreatFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homehub_threat_fetches_total",
			Help: "Total threat feed fetch attempts",
		},
		[]string{"source", "status"},
	)

	// SnapshotWrites counts snapshot persistence attempts by outcome.
	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homehub_snapshot_writes_total",
			Help: "Total store snapshot writes",
		},
		[]string{"status"},
	)
)

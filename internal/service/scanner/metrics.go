package scanner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scanner_sessions_active",
		Help: "Scanner pairing sessions with at least one connected side",
	})

	relayedMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scanner_messages_relayed_total",
			Help: "Messages relayed between paired scanner devices",
		},
		[]string{"from", "result"},
	)
)

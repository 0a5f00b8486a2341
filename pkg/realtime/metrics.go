package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realtime_connections_total",
			Help: "Realtime dial attempts by outcome",
		},
		[]string{"channel", "result"},
	)

	eventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realtime_events_total",
			Help: "Realtime events received by type",
		},
		[]string{"channel", "type"},
	)

	decodeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realtime_decode_errors_total",
			Help: "Realtime frames that were not valid event envelopes",
		},
		[]string{"channel"},
	)
)

package livemap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var trackedDrivers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "livemap_tracked_drivers",
		Help: "Number of drivers with a fresh location on the live map",
	},
)

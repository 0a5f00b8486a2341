package pages

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pagesMounted = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "pages_mounted",
		Help: "Number of console pages currently mounted",
	},
)

package background

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TaskDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "background_task_duration_seconds",
		Help:    "Duration of periodic background task runs",
		Buckets: []float64{.01, .05, .1, .5, 1, 5, 15, 60},
	},
	[]string{"task", "result"},
)

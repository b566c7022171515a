package querier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StatementDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_statement_duration_seconds",
		Help:    "Duration of SQL statements sent to PostgreSQL",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"kind", "in_tx"},
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StatementsEvaluated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gralg_statements_evaluated_total",
		Help: "Statements evaluated, labelled by result kind (graph, int, bool, error).",
	}, []string{"kind"})

	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gralg_evaluation_duration_ms",
		Help:    "Latency of one /v1/eval request in milliseconds.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 1000},
	})

	WorkspaceGraphs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gralg_workspace_graphs",
		Help: "Number of graphs bound in the current workspace.",
	})

	WorkspaceReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gralg_workspace_reloads_total",
		Help: "Successful workspace reloads from disk.",
	})
)

package main

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// prometheus metrics
type metrics struct {
	runDuration *prometheus.HistogramVec
	runCount    *prometheus.CounterVec
	edgesBuilt  *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pqbench",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one algorithm run",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms .. ~26s
		}, []string{"algorithm", "queue", "graph"}),
		runCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pqbench",
			Name:      "runs_total",
			Help:      "The total number of algorithm runs",
		}, []string{"algorithm", "queue"}),
		edgesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pqbench",
			Name:      "generated_edges_total",
			Help:      "Edges placed by the random generator",
		}, []string{"graph"}),
	}
	reg.MustRegister(m.runDuration, m.runCount, m.edgesBuilt)
	return m
}

// observe records one run.
func (m *metrics) observe(algorithm, queue, graph string, seconds float64) {
	m.runDuration.With(prometheus.Labels{"algorithm": algorithm, "queue": queue, "graph": graph}).Observe(seconds)
	m.runCount.With(prometheus.Labels{"algorithm": algorithm, "queue": queue}).Inc()
}

// dumpMetrics writes every family gathered from g in the text exposition format.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

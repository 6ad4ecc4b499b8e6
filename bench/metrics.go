package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - Prometheus collectors fed by Run
type Metrics struct {
	OperationDuration *prometheus.HistogramVec
	OperationRecords  *prometheus.CounterVec
	TableResizes      *prometheus.CounterVec
}

// NewMetrics - Creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "hashbench",
				Subsystem: "operation",
				Name:      "duration_seconds",
				Help:      "Time spent on one loop of operations over the whole dataset.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
			}, []string{"ordering", "operation"}),
		OperationRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hashbench",
				Subsystem: "operation",
				Name:      "records_total",
				Help:      "Number of records processed.",
			}, []string{"ordering", "operation"}),
		TableResizes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hashbench",
				Subsystem: "table",
				Name:      "resizes_total",
				Help:      "Number of times a chain hash map grew.",
			}, []string{"ordering"}),
	}

	reg.MustRegister(m.OperationDuration, m.OperationRecords, m.TableResizes)

	return m
}

// observe - Records a phase, a nil Metrics ignores it
func (m *Metrics) observe(p PhaseResult, n int) {
	if m == nil {
		return
	}

	o := string(p.Ordering)
	for op, d := range map[string]float64{
		"insert": p.Insert.Seconds(),
		"search": p.Search.Seconds(),
		"delete": p.Delete.Seconds(),
	} {
		m.OperationDuration.WithLabelValues(o, op).Observe(d)
		m.OperationRecords.WithLabelValues(o, op).Add(float64(n))
	}
	m.TableResizes.WithLabelValues(o).Add(float64(p.Resizes))
}

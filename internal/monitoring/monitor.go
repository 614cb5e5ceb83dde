package monitoring

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Monitor counts what happens during a chat session
type Monitor struct {
	registry        *prometheus.Registry
	intents         *prometheus.CounterVec
	orders          *prometheus.CounterVec
	recommendations *prometheus.CounterVec
	journalFailures *prometheus.CounterVec
	startTime       time.Time
}

// NewMonitor creates a new monitoring instance with its own registry
func NewMonitor() *Monitor {
	m := &Monitor{
		registry: prometheus.NewRegistry(),
		intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chefbot_intents_total",
				Help: "Input lines classified, by intent",
			},
			[]string{"intent"},
		),
		orders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chefbot_orders_total",
				Help: "Order interactions, by outcome",
			},
			[]string{"outcome"},
		),
		recommendations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chefbot_recommendations_total",
				Help: "Recommendation queries, by whether anything matched",
			},
			[]string{"result"},
		),
		journalFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chefbot_journal_failures_total",
				Help: "Failed log appends, by log",
			},
			[]string{"log"},
		),
		startTime: time.Now(),
	}

	m.registry.MustRegister(m.intents, m.orders, m.recommendations, m.journalFailures)
	return m
}

// Registry exposes the underlying registry
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

// RecordIntent counts one classified input line
func (m *Monitor) RecordIntent(intent string) {
	m.intents.WithLabelValues(intent).Inc()
}

// RecordOrder counts one finished order interaction
func (m *Monitor) RecordOrder(outcome string) {
	m.orders.WithLabelValues(outcome).Inc()
}

// RecordRecommendation counts one recommendation query
func (m *Monitor) RecordRecommendation(found bool) {
	result := "empty"
	if found {
		result = "found"
	}
	m.recommendations.WithLabelValues(result).Inc()
}

// RecordJournalFailure counts one failed append to the named log
func (m *Monitor) RecordJournalFailure(log string) {
	m.journalFailures.WithLabelValues(log).Inc()
}

// GetMetrics returns every counter keyed as name{label="value"}
func (m *Monitor) GetMetrics() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	metrics := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, pair := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", pair.GetName(), pair.GetValue()))
			}
			key := family.GetName()
			if len(labels) > 0 {
				key += "{" + strings.Join(labels, ",") + "}"
			}
			metrics[key] = metric.GetCounter().GetValue()
		}
	}

	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()
	return metrics, nil
}

// Summary renders the metrics as sorted "key value" lines
func (m *Monitor) Summary() (string, error) {
	metrics, err := m.GetMetrics()
	if err != nil {
		return "", err
	}

	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s %g\n", k, metrics[k])
	}
	return b.String(), nil
}

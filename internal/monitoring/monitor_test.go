package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_Counters(t *testing.T) {
	m := NewMonitor()

	m.RecordIntent("order")
	m.RecordIntent("order")
	m.RecordIntent("help")
	m.RecordOrder("confirmed")
	m.RecordRecommendation(true)
	m.RecordRecommendation(false)
	m.RecordJournalFailure("orders")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.intents.WithLabelValues("order")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.intents.WithLabelValues("help")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.orders.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendations.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendations.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.journalFailures.WithLabelValues("orders")))
}

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordIntent("recommend")

	metrics, err := m.GetMetrics()
	require.NoError(t, err)

	value, exists := metrics[`chefbot_intents_total{intent="recommend"}`]
	require.True(t, exists, "expected intent counter in %v", metrics)
	assert.Equal(t, 1.0, value)

	_, exists = metrics["uptime_seconds"]
	assert.True(t, exists)
}

func TestMonitor_Summary(t *testing.T) {
	m := NewMonitor()
	m.RecordOrder("cancelled")

	summary, err := m.Summary()
	require.NoError(t, err)
	assert.Contains(t, summary, `chefbot_orders_total{outcome="cancelled"} 1`)
	assert.Contains(t, summary, "uptime_seconds")
}

func TestMonitor_SeparateRegistries(t *testing.T) {
	a := NewMonitor()
	b := NewMonitor()
	a.RecordIntent("help")

	count, err := testutil.GatherAndCount(a.Registry(), "chefbot_intents_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = testutil.GatherAndCount(b.Registry(), "chefbot_intents_total")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

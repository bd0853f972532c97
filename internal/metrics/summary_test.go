package metrics_test

import (
	"bytes"
	"errors"
	"testing"

	"deliverytracker/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	// Given
	rec, reg := newTestRecorder(t)
	rec.DeliveryAdded("person", 5.5)
	rec.DeliveryAdded("specialized_store", 47)
	rec.ReportRendered(2)
	var out bytes.Buffer

	// When
	err := metrics.WriteSummary(&out, reg)

	// Then
	require.NoError(t, err)
	assert.Equal(t,
		`deliverytracker_deliveries_added_total{kind="person"} 1`+"\n"+
			`deliverytracker_deliveries_added_total{kind="specialized_store"} 1`+"\n"+
			`deliverytracker_delivery_cost_count{kind="person"} 1`+"\n"+
			`deliverytracker_delivery_cost_sum{kind="person"} 5.5`+"\n"+
			`deliverytracker_delivery_cost_count{kind="specialized_store"} 1`+"\n"+
			`deliverytracker_delivery_cost_sum{kind="specialized_store"} 47`+"\n"+
			`deliverytracker_report_deliveries 2`+"\n"+
			`deliverytracker_reports_rendered_total 1`+"\n",
		out.String())
}

func TestWriteSummary_EmptyRegistry(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, metrics.WriteSummary(&out, prometheus.NewRegistry()))
	assert.Empty(t, out.String())
}

func TestWriteSummary_GatherError(t *testing.T) {
	gatherer := prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
		return nil, errors.New("boom")
	})

	err := metrics.WriteSummary(&bytes.Buffer{}, gatherer)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gather metrics")
}

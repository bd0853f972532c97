package metrics

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// WriteSummary prints one "name{labels} value" line per sample gathered from g.
// Histograms are summarised by their _count and _sum series. Families come
// out sorted by name, as returned by the gatherer.
func WriteSummary(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			for _, line := range sampleLines(mf.GetName(), labels, mf.GetType(), m) {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return fmt.Errorf("write metrics summary: %w", err)
				}
			}
		}
	}

	return nil
}

func sampleLines(name, labels string, kind dto.MetricType, m *dto.Metric) []string {
	switch kind {
	case dto.MetricType_COUNTER:
		return []string{name + labels + " " + formatValue(m.GetCounter().GetValue())}
	case dto.MetricType_GAUGE:
		return []string{name + labels + " " + formatValue(m.GetGauge().GetValue())}
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return []string{
			name + "_count" + labels + " " + fmt.Sprint(h.GetSampleCount()),
			name + "_sum" + labels + " " + formatValue(h.GetSampleSum()),
		}
	default:
		return nil
	}
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

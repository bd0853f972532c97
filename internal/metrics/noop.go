package metrics

// NoopRecorder discards everything. Used when metrics are disabled.
type NoopRecorder struct{}

// NewNoopRecorder returns a recorder that records nothing.
func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) DeliveryAdded(kind string, cost float64) {}
func (n *NoopRecorder) ReportRendered(count int)                {}

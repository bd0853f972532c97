package cmd

import (
	"io"
	"log/slog"
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/services"
	"deliverytracker/internal/metrics"
	"deliverytracker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// CompositionRoot owns the process-wide dependencies: the delivery number
// sequence, the delivery schedule, the logger and the metrics recorder.
type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	ids      *kernel.Sequence
	schedule kernel.DeliverySchedule
	registry *prometheus.Registry
	recorder services.Recorder
}

func NewCompositionRoot(cfg Config, logOutput io.Writer) (*CompositionRoot, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("timezone", err)
	}

	schedule, err := kernel.NewDeliverySchedule(cfg.DeliverySlot, location)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, logOutput).With("run_id", uuid.NewString())

	root := &CompositionRoot{
		config:   cfg,
		logger:   logger,
		ids:      kernel.NewSequence(),
		schedule: schedule,
	}

	if cfg.MetricsEnabled {
		root.registry = prometheus.NewRegistry()
		root.recorder = metrics.NewPrometheusRecorder(root.registry, logger)
	} else {
		root.recorder = metrics.NewNoopRecorder()
	}

	logger.Debug("composition root ready",
		"timezone", location.String(),
		"delivery_slot", schedule.Expression(),
		"metrics_enabled", cfg.MetricsEnabled,
	)

	return root, nil
}

func (c *CompositionRoot) Config() Config {
	return c.config
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// IDs returns the single delivery number sequence of the process.
func (c *CompositionRoot) IDs() *kernel.Sequence {
	return c.ids
}

func (c *CompositionRoot) Schedule() kernel.DeliverySchedule {
	return c.schedule
}

// Gatherer returns the metrics registry, or false when metrics are disabled.
func (c *CompositionRoot) Gatherer() (prometheus.Gatherer, bool) {
	if c.registry == nil {
		return nil, false
	}
	return c.registry, true
}

func (c *CompositionRoot) CreateDeliveryService() *services.DeliveryService {
	return services.NewDeliveryService(c.recorder)
}

func newLogger(level string, out io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))
}

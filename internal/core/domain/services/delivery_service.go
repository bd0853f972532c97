package services

import (
	"strings"

	"deliverytracker/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

// Recorder receives notifications about service activity.
// Implementations must be safe to call with any kind label.
type Recorder interface {
	DeliveryAdded(kind string, cost float64)
	ReportRendered(count int)
}

type noopRecorder struct{}

func (noopRecorder) DeliveryAdded(string, float64) {}
func (noopRecorder) ReportRendered(int)            {}

// DeliveryService tracks deliveries of every variant in one registry.
//
// Business rules:
//   - Deliveries are kept in the order they were added
//   - The report lists every delivery, separated by one blank line
//   - Totals use the cost each delivery stored at construction
//
// Example usage:
//
//	service := services.NewDeliveryService(nil)
//	service.Add(personDelivery)
//	service.Add(pickupDelivery)
//	fmt.Println(service.Report())
type DeliveryService struct {
	registry *delivery.Registry[delivery.Delivery]
	recorder Recorder
}

// NewDeliveryService creates a DeliveryService with an empty registry.
//
// Parameters:
//   - recorder: receives activity notifications; nil disables recording
func NewDeliveryService(recorder Recorder) *DeliveryService {
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &DeliveryService{
		registry: delivery.NewRegistry[delivery.Delivery](),
		recorder: recorder,
	}
}

// Add registers d and records it.
func (s *DeliveryService) Add(d delivery.Delivery) {
	s.registry.Add(d)
	s.recorder.DeliveryAdded(d.Kind().String(), d.Cost().InexactFloat64())
}

// Report returns the Describe output of every delivery in insertion order,
// separated by a blank line. An empty service yields an empty string.
func (s *DeliveryService) Report() string {
	deliveries := s.registry.List()

	parts := make([]string, 0, len(deliveries))
	for _, d := range deliveries {
		parts = append(parts, d.Describe())
	}

	s.recorder.ReportRendered(len(deliveries))
	return strings.Join(parts, "\n\n")
}

// Registry returns the underlying registry. Changes made through it are
// visible to the service.
func (s *DeliveryService) Registry() *delivery.Registry[delivery.Delivery] {
	return s.registry
}

// TotalCost sums the stored costs of all registered deliveries.
func (s *DeliveryService) TotalCost() decimal.Decimal {
	return delivery.TotalCost(s.registry.List())
}

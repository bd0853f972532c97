package services_test

import (
	"strings"
	"testing"
	"time"

	"deliverytracker/internal/core/domain/model/delivery"
	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/product"
	"deliverytracker/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) DeliveryAdded(kind string, cost float64) {
	m.Called(kind, cost)
}

func (m *MockRecorder) ReportRendered(count int) {
	m.Called(count)
}

type fixture struct {
	person *delivery.PersonDelivery
	pickup *delivery.PickupPointDelivery
	store  *delivery.SpecializedStoreDelivery
}

func newFixture() fixture {
	ids := kernel.NewSequence()
	date := time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)
	return fixture{
		person: delivery.NewPersonDelivery(ids, "Ivanov", "Lenina 1", date,
			product.NewProduct("Tablet", decimal.RequireFromString("1200.00"), 2.5)),
		pickup: delivery.NewPickupPointDelivery(ids, 101, "Pushkina 10", date,
			product.NewProduct("Book", decimal.RequireFromString("15.00"), 0.2)),
		store: delivery.NewSpecializedStoreDelivery(ids, 200, "Techmarket", "Mira 5", date,
			product.NewProduct("Smartphone", decimal.RequireFromString("800.00"), 0.3)),
	}
}

func TestDeliveryService_Add(t *testing.T) {
	// Given
	f := newFixture()
	recorder := &MockRecorder{}
	mock.InOrder(
		recorder.On("DeliveryAdded", "person", 5.5).Return().Once(),
		recorder.On("DeliveryAdded", "pickup_point", 2.5).Return().Once(),
		recorder.On("DeliveryAdded", "specialized_store", 47.0).Return().Once(),
	)
	service := services.NewDeliveryService(recorder)

	// When
	service.Add(f.person)
	service.Add(f.pickup)
	service.Add(f.store)

	// Then
	recorder.AssertExpectations(t)
	assert.Equal(t, 3, service.Registry().Len())
	assert.Equal(t, "55.00", service.TotalCost().StringFixed(2))
}

func TestDeliveryService_Report(t *testing.T) {
	t.Run("should join descriptions with a blank line", func(t *testing.T) {
		// Given
		f := newFixture()
		recorder := &MockRecorder{}
		recorder.On("DeliveryAdded", mock.Anything, mock.Anything).Return()
		recorder.On("ReportRendered", 2).Return().Once()
		service := services.NewDeliveryService(recorder)
		service.Add(f.person)
		service.Add(f.store)

		// When
		report := service.Report()

		// Then
		recorder.AssertExpectations(t)
		assert.Equal(t, f.person.Describe()+"\n\n"+f.store.Describe(), report)
		assert.False(t, strings.HasSuffix(report, "\n"))
	})

	t.Run("should render empty report", func(t *testing.T) {
		recorder := &MockRecorder{}
		recorder.On("ReportRendered", 0).Return().Once()
		service := services.NewDeliveryService(recorder)

		assert.Empty(t, service.Report())
		recorder.AssertExpectations(t)
	})

	t.Run("should reflect status changes", func(t *testing.T) {
		f := newFixture()
		service := services.NewDeliveryService(nil)
		service.Add(f.pickup)

		delivery.MarkAsCompleted(f.pickup)

		assert.Contains(t, service.Report(), "Status: Completed")
	})
}

func TestDeliveryService_NilRecorder(t *testing.T) {
	// Given
	f := newFixture()
	service := services.NewDeliveryService(nil)

	// When
	require.NotPanics(t, func() {
		service.Add(f.person)
		_ = service.Report()
	})

	// Then
	assert.Equal(t, "5.50", service.TotalCost().StringFixed(2))
}

func TestDeliveryService_RegistryIsShared(t *testing.T) {
	// Given
	f := newFixture()
	service := services.NewDeliveryService(nil)
	service.Add(f.person)
	service.Add(f.pickup)

	// When
	service.Registry().Remove(f.person.ID())

	// Then
	assert.Equal(t, "2.50", service.TotalCost().StringFixed(2))
	assert.NotContains(t, service.Report(), "Recipient: Ivanov")
}

func TestDeliveryService_EmptyTotal(t *testing.T) {
	assert.True(t, services.NewDeliveryService(nil).TotalCost().IsZero())
}

package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"deliverytracker/internal/core/domain/model/product"
	"deliverytracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout used for delivery dates in reports.
const DateLayout = "2006-01-02 15:04:05"

// ErrDeliveryIsNotConstructed is returned when a delivery was not created through
// one of the New*Delivery constructors.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via its constructor")

// IDGenerator hands out delivery numbers. Every call returns a number greater
// than any it returned before.
type IDGenerator interface {
	Next() int
}

// Delivery is a shipment of one product to one address.
//
// Implementations compute their cost once, at construction, and keep it.
// CalculateCost reruns the formula against the current product without
// touching the stored value.
type Delivery interface {
	ID() int
	Kind() Kind
	RecipientAddress() string
	DeliveryDate() time.Time
	Status() Status
	Cost() decimal.Decimal
	Product() *product.Product

	CalculateCost() decimal.Decimal
	Describe() string
	SetStatus(status Status)
	Validate() error
}

// MarkAsCompleted moves d to Completed.
func MarkAsCompleted(d Delivery) {
	d.SetStatus(Completed)
}

// shipment holds the state every variant shares.
type shipment struct {
	id               int
	recipientAddress string
	deliveryDate     time.Time
	status           Status
	cost             decimal.Decimal
	product          *product.Product
	guard            guard.ConstructorGuard
}

func newShipment(ids IDGenerator, address string, date time.Time, p *product.Product) shipment {
	return shipment{
		id:               ids.Next(),
		recipientAddress: address,
		deliveryDate:     date,
		status:           Pending,
		product:          p,
		guard:            guard.NewConstructorGuard(),
	}
}

// ID returns the delivery number.
func (s *shipment) ID() int {
	return s.id
}

// RecipientAddress returns the address the product is shipped to.
func (s *shipment) RecipientAddress() string {
	return s.recipientAddress
}

// DeliveryDate returns the planned delivery moment.
func (s *shipment) DeliveryDate() time.Time {
	return s.deliveryDate
}

// Status returns the current lifecycle state.
func (s *shipment) Status() Status {
	return s.status
}

// Cost returns the cost computed at construction.
func (s *shipment) Cost() decimal.Decimal {
	return s.cost
}

// Product returns the shipped product. The pointer is shared with the caller.
func (s *shipment) Product() *product.Product {
	return s.product
}

// SetStatus assigns status without checking the transition.
func (s *shipment) SetStatus(status Status) {
	s.status = status
}

func (s *shipment) validate() error {
	return s.guard.Validate(ErrDeliveryIsNotConstructed)
}

// describe renders the common report lines followed by the variant lines.
func (s *shipment) describe(extra ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delivery number: %d\n", s.id)
	fmt.Fprintf(&b, "Address: %s\n", s.recipientAddress)
	fmt.Fprintf(&b, "Date: %s\n", s.deliveryDate.Format(DateLayout))
	fmt.Fprintf(&b, "Status: %s\n", s.status)
	fmt.Fprintf(&b, "Cost: %s\n", s.cost.StringFixed(2))
	if s.product != nil {
		fmt.Fprintf(&b, "Product: %s - %s", s.product.Name(), s.product.Price().StringFixed(2))
	} else {
		b.WriteString("Product: -")
	}
	for _, line := range extra {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}

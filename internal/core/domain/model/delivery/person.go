package delivery

import (
	"fmt"
	"time"

	"deliverytracker/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

var (
	personBaseCost    = decimal.NewFromInt(5)
	personCostPerKilo = decimal.RequireFromString("0.2")
)

// PersonDelivery is a courier delivery handed to a named recipient.
// Its cost is 5.00 plus 0.20 per kilogram of product weight.
type PersonDelivery struct {
	shipment
	recipientName string
}

var _ Delivery = (*PersonDelivery)(nil)

// NewPersonDelivery creates a Pending PersonDelivery, drawing its number from ids.
//
// Parameters:
//   - ids: source of the delivery number
//   - recipientName: the person receiving the product
//   - address: delivery address
//   - date: planned delivery moment
//   - p: the shipped product, kept by reference
//
// Example:
//
//	d := delivery.NewPersonDelivery(seq, "Ivanov", "Lenina 1", date, tablet)
//	d.Cost() // 5.50 for a 2.5 kg tablet
func NewPersonDelivery(
	ids IDGenerator,
	recipientName, address string,
	date time.Time,
	p *product.Product,
) *PersonDelivery {
	d := &PersonDelivery{
		shipment:      newShipment(ids, address, date, p),
		recipientName: recipientName,
	}
	d.cost = d.CalculateCost()
	return d
}

// Validate reports whether d was built by NewPersonDelivery.
func (d *PersonDelivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.validate()
}

// Kind returns KindPerson.
func (d *PersonDelivery) Kind() Kind {
	return KindPerson
}

// RecipientName returns the person receiving the product.
func (d *PersonDelivery) RecipientName() string {
	return d.recipientName
}

// CalculateCost returns 5.00 + weight * 0.20 for the current product.
func (d *PersonDelivery) CalculateCost() decimal.Decimal {
	if d.product == nil {
		return personBaseCost
	}
	return personBaseCost.Add(decimal.NewFromFloat(d.product.Weight()).Mul(personCostPerKilo))
}

// Describe renders the delivery report with the recipient line.
func (d *PersonDelivery) Describe() string {
	return d.describe(fmt.Sprintf("Recipient: %s", d.recipientName))
}

package delivery

import (
	"fmt"
	"time"

	"deliverytracker/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

var pickupPointCost = decimal.RequireFromString("2.5")

// PickupPointDelivery ships a product to a numbered pickup point.
// It always costs 2.50.
type PickupPointDelivery struct {
	shipment
	pickupPointID int
}

var _ Delivery = (*PickupPointDelivery)(nil)

// NewPickupPointDelivery creates a Pending PickupPointDelivery, drawing its number from ids.
func NewPickupPointDelivery(
	ids IDGenerator,
	pickupPointID int,
	address string,
	date time.Time,
	p *product.Product,
) *PickupPointDelivery {
	d := &PickupPointDelivery{
		shipment:      newShipment(ids, address, date, p),
		pickupPointID: pickupPointID,
	}
	d.cost = d.CalculateCost()
	return d
}

// Validate reports whether d was built by NewPickupPointDelivery.
func (d *PickupPointDelivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.validate()
}

// Kind returns KindPickupPoint.
func (d *PickupPointDelivery) Kind() Kind {
	return KindPickupPoint
}

// PickupPointID returns the pickup point number.
func (d *PickupPointDelivery) PickupPointID() int {
	return d.pickupPointID
}

// CalculateCost returns the flat pickup point rate.
func (d *PickupPointDelivery) CalculateCost() decimal.Decimal {
	return pickupPointCost
}

// Describe renders the delivery report with the pickup point line.
func (d *PickupPointDelivery) Describe() string {
	return d.describe(fmt.Sprintf("Pickup point number: %d", d.pickupPointID))
}

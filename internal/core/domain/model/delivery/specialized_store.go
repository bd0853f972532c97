package delivery

import (
	"fmt"
	"time"

	"deliverytracker/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

var (
	storeBaseCost  = decimal.NewFromInt(7)
	storePriceRate = decimal.RequireFromString("0.05")
)

// SpecializedStoreDelivery ships a product to a partner store.
// Its cost is 7.00 plus 5% of the product price.
type SpecializedStoreDelivery struct {
	shipment
	storeID   int
	storeName string
}

var _ Delivery = (*SpecializedStoreDelivery)(nil)

// NewSpecializedStoreDelivery creates a Pending SpecializedStoreDelivery, drawing its number from ids.
//
// Example:
//
//	d := delivery.NewSpecializedStoreDelivery(seq, 200, "Techmarket", "Mira 5", date, phone)
//	d.Cost() // 47.00 for an 800.00 phone
func NewSpecializedStoreDelivery(
	ids IDGenerator,
	storeID int,
	storeName, address string,
	date time.Time,
	p *product.Product,
) *SpecializedStoreDelivery {
	d := &SpecializedStoreDelivery{
		shipment:  newShipment(ids, address, date, p),
		storeID:   storeID,
		storeName: storeName,
	}
	d.cost = d.CalculateCost()
	return d
}

// Validate reports whether d was built by NewSpecializedStoreDelivery.
func (d *SpecializedStoreDelivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.validate()
}

// Kind returns KindSpecializedStore.
func (d *SpecializedStoreDelivery) Kind() Kind {
	return KindSpecializedStore
}

// StoreID returns the store number.
func (d *SpecializedStoreDelivery) StoreID() int {
	return d.storeID
}

// StoreName returns the store name.
func (d *SpecializedStoreDelivery) StoreName() string {
	return d.storeName
}

// CalculateCost returns 7.00 + price * 0.05 for the current product.
func (d *SpecializedStoreDelivery) CalculateCost() decimal.Decimal {
	if d.product == nil {
		return storeBaseCost
	}
	return storeBaseCost.Add(d.product.Price().Mul(storePriceRate))
}

// Describe renders the delivery report with the store name and number lines.
func (d *SpecializedStoreDelivery) Describe() string {
	return d.describe(
		fmt.Sprintf("Store name: %s", d.storeName),
		fmt.Sprintf("Store number: %d", d.storeID),
	)
}

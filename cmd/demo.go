package cmd

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"deliverytracker/internal/core/domain/model/delivery"
	"deliverytracker/internal/core/domain/model/product"
	"deliverytracker/internal/metrics"
	"deliverytracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RunDemo walks through the delivery tracking scenario and writes the
// results to out. now anchors the delivery dates.
func RunDemo(root *CompositionRoot, out io.Writer, now time.Time) error {
	logger := root.Logger().With("component", "demo")
	ids := root.IDs()
	schedule := root.Schedule()

	tablet := product.NewProduct("Tablet", decimal.RequireFromString("1200.00"), 2.5)
	book := product.NewProduct("Book", decimal.RequireFromString("15.00"), 0.2)
	smartphone := product.NewProduct("Smartphone", decimal.RequireFromString("800.00"), 0.3)

	var buf bytes.Buffer

	personDelivery := delivery.NewPersonDelivery(ids, "Ivanov",
		"Yablochnaya 23, apt. 14", schedule.SlotAfter(now, 3), tablet)
	pickupDelivery := delivery.NewPickupPointDelivery(ids, 101,
		"Grushevaya 45", schedule.SlotAfter(now, 2), book)
	storeDelivery := delivery.NewSpecializedStoreDelivery(ids, 200, "Techmarket",
		"Vishnevaya 76", schedule.SlotAfter(now, 5), smartphone)

	all := []delivery.Delivery{personDelivery, pickupDelivery, storeDelivery}
	for _, d := range all {
		logger.Info("delivery created",
			"delivery_id", d.ID(),
			"kind", d.Kind().String(),
			"cost", d.Cost().StringFixed(2),
			"date", d.DeliveryDate().Format(delivery.DateLayout),
		)
		fmt.Fprintf(&buf, "%s\n\n", d.Describe())
	}

	registry := delivery.NewRegistry[delivery.Delivery]()
	for _, d := range all {
		registry.Add(d)
	}
	fmt.Fprintf(&buf, "Total cost: %s\n", delivery.TotalCost(registry.List()).StringFixed(2))

	delivery.MarkAsCompleted(personDelivery)
	logger.Debug("delivery completed", "delivery_id", personDelivery.ID())
	fmt.Fprintf(&buf, "\nStatus after marking as completed: %s\n", personDelivery.Status())

	personRegistry := delivery.NewPersonRegistry()
	personRegistry.Add(personDelivery)
	fmt.Fprintf(&buf, "\nPerson deliveries: %d, total cost: %s\n",
		personRegistry.Len(), delivery.TotalCost(personRegistry.List()).StringFixed(2))

	service := root.CreateDeliveryService()
	for _, d := range all {
		service.Add(d)
	}
	fmt.Fprintf(&buf, "\nAll deliveries:\n%s\n", service.Report())

	archive := delivery.NewArchive()
	for _, d := range all {
		archive.Add(d)
	}
	const lookupID = 2
	fmt.Fprintf(&buf, "\nDelivery number %d:\n", lookupID)
	if d, ok := archive.Lookup(lookupID); ok {
		fmt.Fprintf(&buf, "%s\n", d.Describe())
	} else {
		notFound := errs.NewObjectNotFoundError("deliveryId", fmt.Sprint(lookupID))
		logger.Warn("archive lookup failed", "error", notFound)
		fmt.Fprintf(&buf, "%s\n", notFound)
	}

	products := product.NewCollection()
	products.Add(tablet)
	products.Add(book)
	products = products.Combine(smartphone)
	fmt.Fprintf(&buf, "\nAll products:\n%s", products.Describe())

	if gatherer, ok := root.Gatherer(); ok {
		buf.WriteString("\nMetrics:\n")
		if err := metrics.WriteSummary(&buf, gatherer); err != nil {
			return fmt.Errorf("metrics summary: %w", err)
		}
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write demo output: %w", err)
	}

	logger.Info("demo finished", "deliveries", registry.Len())
	return nil
}

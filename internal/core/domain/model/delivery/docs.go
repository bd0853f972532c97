// Package delivery models shipments of a product to a recipient and the
// collections used to track them.
//
// The package includes:
//   - Delivery: the interface every shipment variant satisfies
//   - PersonDelivery, PickupPointDelivery, SpecializedStoreDelivery: the
//     variants, each with its own cost formula and report line
//   - Status: the lifecycle state of a delivery (Pending, InProgress,
//     Completed, Cancelled)
//   - Kind: the variant tag used in logs and metrics
//   - Registry: an ordered, generic collection with add, find, remove and totals
//   - Archive: a lookup view keyed by delivery number
//
// Key business rules:
//   - Delivery numbers come from an injected IDGenerator, one per construction,
//     and are never reused
//   - Cost is computed once when a delivery is built and is not recalculated
//     when its product changes afterwards
//   - Every delivery starts Pending; SetStatus accepts any transition
//   - Registries and archives accept duplicate delivery numbers
package delivery

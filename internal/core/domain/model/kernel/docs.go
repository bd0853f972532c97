// Package kernel provides small domain primitives shared by the delivery model.
//
// The package includes:
//   - Sequence: the identifier source handed to delivery constructors
//   - DeliverySchedule: a cron-based calculator for concrete delivery slots
//
// The application keeps a single Sequence for the process lifetime; tests
// create their own.
package kernel

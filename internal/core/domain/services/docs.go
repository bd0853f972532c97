// Package services provides domain services that work across several
// deliveries at once.
//
// The package includes:
//   - DeliveryService: keeps every registered delivery of any variant, totals
//     their costs and renders a combined report
//   - Recorder: the port through which DeliveryService reports activity to an
//     instrumentation backend
package services

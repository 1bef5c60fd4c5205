// Package services provides the stateless domain services of the clinic meal
// service.
//
// The package includes:
//   - MenuResolver: finds the dish for a (day, diet, meal type) slot in a catalog snapshot
//   - PricingCalculator: the accompaniment price tiers of employee orders
//   - NotificationEmitter: composes the message sent when an order enters
//     Preparing, ReadyForDelivery or Delivered
//
// None of them perform I/O.
package services

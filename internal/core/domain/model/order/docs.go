// Package order provides the two order aggregates of the clinic meal service
// and the state machine they share.
//
// The package includes:
//   - PatientOrder: a meal placed by a nurse for a patient, with the menu text frozen at creation
//   - EmployeeOrder: a staff meal priced from the menu base price and the accompaniment count
//   - TransitionTable: one generic machine parameterised by Kind and a per-kind edge table
//   - Lifecycle: status, timestamps and version carried by both aggregates
//
// Key business rules:
//   - PatientOrder: AwaitingApproval -> Approved -> Preparing -> ReadyForDelivery -> Delivered
//   - EmployeeOrder: Ordered -> Preparing -> ReadyForDelivery -> Delivered
//   - Cancelled is reachable only from the initial status
//   - Every edge is gated by a kernel.Permission of the acting role
//   - Delivered and Cancelled are terminal
//   - Hard delete is allowed only in the initial or a terminal status
package order

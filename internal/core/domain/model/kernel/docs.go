// Package kernel provides the value objects shared by every aggregate of the
// clinic meal service.
//
// The package includes:
//   - UUID: identifiers for patients, orders, menus, accounts and notifications
//   - Diet, MealType, DayOfWeek: the enumerations that key the weekly patient menu
//   - Price: a positive, currency-agnostic amount
//   - Role, Permission, Actor: the declared permission set of each staff role and
//     the verified identity performing a request
//
// All value objects are immutable; zero values are invalid and fail Validate.
package kernel

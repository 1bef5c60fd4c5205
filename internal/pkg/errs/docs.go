// Package errs provides standardized error types for the clinic meal service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: a referenced patient, order, menu or notification is missing
//   - TransitionIsNotAllowedError and PermissionDeniedError: the order state machine refused a change
//   - ConcurrentModificationError: an optimistic compare-and-swap update lost the race
//   - PersistenceError: the store failed; surfaced as-is, never retried
//   - NotificationError: a notification could not be issued; non-fatal
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs

package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below unwraps to its sentinel so callers
// can classify failures with errors.Is.
var (
	ErrObjectNotFound          = errors.New("object not found")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrValueIsOutOfRange       = errors.New("value is out of range")
	ErrValueIsRequired         = errors.New("value is required")
	ErrTransitionIsNotAllowed  = errors.New("transition is not allowed")
	ErrPermissionDenied        = errors.New("permission denied")
	ErrConcurrentModification  = errors.New("concurrent modification")
	ErrPersistence             = errors.New("persistence failed")
	ErrNotificationIsNotIssued = errors.New("notification is not issued")
)

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause))
}

// ObjectNotFoundError reports that an entity referenced by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)),
		e.Cause,
	)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that fails a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, lo, hi any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: lo, Max: hi}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, lo, hi any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: lo, Max: hi, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
			ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max)),
		e.Cause,
	)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// TransitionIsNotAllowedError reports a status change the order state machine
// refuses, either because the target is unreachable or because the actor's
// role lacks the permission for the edge. In the latter case Cause is a
// *PermissionDeniedError and errors.Is matches both sentinels.
type TransitionIsNotAllowedError struct {
	Kind  string
	From  string
	To    string
	Cause error
}

func NewTransitionIsNotAllowedError(kind, from, to string) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{Kind: kind, From: from, To: to}
}

func NewTransitionIsNotAllowedErrorWithCause(kind, from, to string, cause error) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{Kind: kind, From: from, To: to, Cause: cause}
}

func (e *TransitionIsNotAllowedError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s %s -> %s", ErrTransitionIsNotAllowed, e.Kind, e.From, e.To),
		e.Cause,
	)
}

func (e *TransitionIsNotAllowedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTransitionIsNotAllowed}
	}
	return []error{ErrTransitionIsNotAllowed, e.Cause}
}

// PermissionDeniedError reports that a role does not hold a permission.
type PermissionDeniedError struct {
	Role       string
	Permission string
}

func NewPermissionDeniedError(role, permission string) *PermissionDeniedError {
	return &PermissionDeniedError{Role: role, Permission: permission}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: role %s lacks %s", ErrPermissionDenied, sanitize(e.Role), e.Permission)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// ConcurrentModificationError reports a lost compare-and-swap: the row changed
// between read and write.
type ConcurrentModificationError struct {
	Entity string
	ID     any
}

func NewConcurrentModificationError(entity string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{Entity: entity, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s was changed by another request", ErrConcurrentModification, e.Entity, sanitize(e.ID))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// PersistenceError wraps a store failure. It is surfaced verbatim and never
// retried.
type PersistenceError struct {
	Op    string
	Cause error
}

func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

func (e *PersistenceError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrPersistence, e.Op), e.Cause)
}

func (e *PersistenceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Cause}
}

// NotificationError reports a notification that could not be issued or
// handed to the sink. It is non-fatal: the status change that triggered it
// stays committed.
type NotificationError struct {
	RecipientID string
	Cause       error
}

func NewNotificationError(recipientID string, cause error) *NotificationError {
	return &NotificationError{RecipientID: recipientID, Cause: cause}
}

func (e *NotificationError) Error() string {
	return withCause(fmt.Sprintf("%s: recipient %s", ErrNotificationIsNotIssued, e.RecipientID), e.Cause)
}

func (e *NotificationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrNotificationIsNotIssued}
	}
	return []error{ErrNotificationIsNotIssued, e.Cause}
}

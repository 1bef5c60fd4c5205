// Package notification holds the Notification aggregate: a message addressed
// to a staff member, written in the same transaction as the order status
// change that caused it and later handed to the external sink.
package notification

import (
	"errors"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

const (
	// MaxDispatchAttempts is how many failed hand-offs a notification gets
	// before it is parked and no longer offered to the relay.
	MaxDispatchAttempts = 8

	firstRetryDelay = 10 * time.Second
	maxRetryDelay   = time.Hour
)

// DispatchState is the outbox bookkeeping of a notification.
type DispatchState struct {
	DispatchedAt  *time.Time
	Attempts      int
	NextAttemptAt *time.Time
}

type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	orderID     kernel.UUID
	message     string
	read        bool
	createdAt   time.Time
	dispatch    DispatchState

	isConstructed bool
}

func NewNotification(id, recipientID, orderID kernel.UUID, message string, createdAt time.Time) (*Notification, error) {
	return RestoreNotification(id, recipientID, orderID, message, false, createdAt, DispatchState{})
}

func RestoreNotification(
	id, recipientID, orderID kernel.UUID,
	message string,
	read bool,
	createdAt time.Time,
	dispatch DispatchState,
) (*Notification, error) {
	var errList []error
	errList = append(errList, id.Validate(), recipientID.Validate(), orderID.Validate())
	if strings.TrimSpace(message) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("message"))
	}
	if createdAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("created at"))
	}
	if dispatch.Attempts < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("dispatch attempts", dispatch.Attempts, 0, MaxDispatchAttempts))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		recipientID:   recipientID,
		orderID:       orderID,
		message:       message,
		read:          read,
		createdAt:     createdAt,
		dispatch:      dispatch,
		isConstructed: true,
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }
func (n *Notification) OrderID() kernel.UUID     { return n.orderID }
func (n *Notification) Message() string          { return n.message }
func (n *Notification) IsRead() bool             { return n.read }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
func (n *Notification) DispatchedAt() *time.Time { return n.dispatch.DispatchedAt }
func (n *Notification) IsDispatched() bool       { return n.dispatch.DispatchedAt != nil }
func (n *Notification) Dispatch() DispatchState  { return n.dispatch }

// IsParked reports a notification that used up its dispatch attempts.
func (n *Notification) IsParked() bool {
	return n.dispatch.DispatchedAt == nil && n.dispatch.Attempts >= MaxDispatchAttempts
}

// MarkRead is allowed to the recipient only.
func (n *Notification) MarkRead(actor kernel.Actor) error {
	if !actor.ID().IsEqual(n.recipientID) {
		return errs.NewPermissionDeniedError(actor.Role().String(), "ReadOthersNotifications")
	}
	n.read = true
	return nil
}

// MarkDispatched records the hand-off to the sink. Repeated calls keep the
// first timestamp.
func (n *Notification) MarkDispatched(at time.Time) {
	if n.dispatch.DispatchedAt == nil {
		n.dispatch.DispatchedAt = &at
		n.dispatch.NextAttemptAt = nil
	}
}

// RecordDispatchFailure counts a rejected hand-off and schedules the next
// attempt with a doubling delay, capped at maxRetryDelay. It reports whether
// the notification is now parked.
func (n *Notification) RecordDispatchFailure(at time.Time) bool {
	if n.dispatch.DispatchedAt != nil {
		return false
	}
	n.dispatch.Attempts++
	delay := firstRetryDelay
	for i := 1; i < n.dispatch.Attempts && delay < maxRetryDelay; i++ {
		delay *= 2
	}
	delay = min(delay, maxRetryDelay)
	next := at.Add(delay)
	n.dispatch.NextAttemptAt = &next
	return n.IsParked()
}

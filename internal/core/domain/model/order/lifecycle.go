package order

import (
	"errors"
	"fmt"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

// Lifecycle is the status part shared by both order aggregates: current
// status, creation and milestone timestamps, and the persisted version used
// for compare-and-swap updates.
type Lifecycle struct {
	table       *TransitionTable
	status      Status
	createdAt   time.Time
	preparedAt  *time.Time
	deliveredAt *time.Time
	version     int
}

// NewLifecycle starts a lifecycle in the initial status of kind.
func NewLifecycle(kind Kind, createdAt time.Time) (Lifecycle, error) {
	table := TableFor(kind)
	if table == nil {
		return Lifecycle{}, kind.Validate()
	}
	if createdAt.IsZero() {
		return Lifecycle{}, errs.NewValueIsRequiredError("created at")
	}
	return Lifecycle{
		table:     table,
		status:    table.Initial(),
		createdAt: createdAt,
	}, nil
}

// RestoreLifecycle rebuilds a lifecycle from persisted state. It checks that
// the status belongs to the kind and that the timestamps agree with it.
func RestoreLifecycle(
	kind Kind,
	status Status,
	createdAt time.Time,
	preparedAt, deliveredAt *time.Time,
	version int,
) (Lifecycle, error) {
	table := TableFor(kind)
	if table == nil {
		return Lifecycle{}, kind.Validate()
	}
	if err := status.Validate(); err != nil {
		return Lifecycle{}, err
	}
	if !table.Knows(status) {
		return Lifecycle{}, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a %s status", status, kind))
	}

	var errList []error
	if createdAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("created at"))
	}
	if deliveredAt != nil && status != Delivered {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"delivered at", fmt.Errorf("set while status is %s", status)))
	}
	if status == Delivered && deliveredAt == nil {
		errList = append(errList, errs.NewValueIsRequiredError("delivered at"))
	}
	if (status == ReadyForDelivery || status == Delivered) && preparedAt == nil {
		errList = append(errList, errs.NewValueIsRequiredError("prepared at"))
	}
	if version < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Lifecycle{}, err
	}

	return Lifecycle{
		table:       table,
		status:      status,
		createdAt:   createdAt,
		preparedAt:  preparedAt,
		deliveredAt: deliveredAt,
		version:     version,
	}, nil
}

func (l Lifecycle) Kind() Kind {
	if l.table == nil {
		return UnknownKind
	}
	return l.table.Kind()
}

func (l Lifecycle) Status() Status          { return l.status }
func (l Lifecycle) CreatedAt() time.Time    { return l.createdAt }
func (l Lifecycle) PreparedAt() *time.Time  { return l.preparedAt }
func (l Lifecycle) DeliveredAt() *time.Time { return l.deliveredAt }

// Version is the value read from storage; repositories update only if the
// row still carries it.
func (l Lifecycle) Version() int { return l.version }

func (l Lifecycle) IsInitial() bool {
	return l.table != nil && l.status == l.table.Initial()
}

func (l Lifecycle) IsTerminal() bool {
	return l.status.IsTerminal()
}

// Transition returns the lifecycle after moving to status to. ReadyForDelivery
// stamps preparedAt and Delivered stamps deliveredAt with now.
func (l Lifecycle) Transition(to Status, actor kernel.Actor, owner kernel.UUID, now time.Time) (Lifecycle, error) {
	if l.table == nil {
		return l, errs.NewValueIsRequiredError("lifecycle")
	}
	if err := actor.Validate(); err != nil {
		return l, err
	}
	if err := l.table.Authorize(l.status, to, actor, owner); err != nil {
		return l, err
	}

	next := l
	next.status = to
	switch to {
	case ReadyForDelivery:
		next.preparedAt = &now
	case Delivered:
		next.deliveredAt = &now
	default:
	}
	return next, nil
}

// CheckDeletable allows a hard delete by a role holding kernel.DeleteOrder
// while the order is in its initial or a terminal status.
func (l Lifecycle) CheckDeletable(actor kernel.Actor) error {
	if err := actor.Role().Require(kernel.DeleteOrder); err != nil {
		return err
	}
	if !l.IsInitial() && !l.IsTerminal() {
		return errs.NewTransitionIsNotAllowedErrorWithCause(
			l.Kind().String(), l.status.String(), "Deleted",
			fmt.Errorf("order is being prepared"),
		)
	}
	return nil
}

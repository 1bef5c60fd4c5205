package order

import (
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
)

// Order is the behaviour both aggregates expose to the status-change and
// delete use cases.
type Order interface {
	ID() kernel.UUID
	Kind() Kind
	Status() Status
	Lifecycle() Lifecycle
	// Owner is the actor an OwnerOnly grant is checked against.
	Owner() kernel.UUID
	// Recipient receives the notifications emitted on status changes.
	Recipient() kernel.UUID
	MenuName() string
	ChangeStatus(to Status, actor kernel.Actor, now time.Time) error
	CheckDeletable(actor kernel.Actor) error
}

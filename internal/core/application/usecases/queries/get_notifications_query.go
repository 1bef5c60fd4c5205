package queries

import (
	"errors"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// NotificationsPageSize caps how many notifications one call returns.
const NotificationsPageSize = 100

// GetNotificationsQuery lists the actor's own notifications, newest first.
type GetNotificationsQuery struct {
	actor      kernel.Actor
	unreadOnly bool

	guard guard.ConstructorGuard
}

func NewGetNotificationsQuery(actor kernel.Actor, unreadOnly bool) (GetNotificationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}
	return GetNotificationsQuery{actor: actor, unreadOnly: unreadOnly, guard: guard.NewConstructorGuard()}, nil
}

func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

func (q GetNotificationsQuery) Actor() kernel.Actor { return q.actor }
func (q GetNotificationsQuery) UnreadOnly() bool    { return q.unreadOnly }

type NotificationView struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Message   string
	Read      bool
	CreatedAt time.Time
}

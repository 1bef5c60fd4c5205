package ports

import (
	"context"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/notification"
)

// NotificationRepository is the outbox table of notifications. The read flag
// and the dispatch bookkeeping have separate writers (the recipient and the
// relay), so each is saved on its own and never overwrites the other.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)
	// MarkRead saves the read flag only.
	MarkRead(ctx context.Context, n *notification.Notification) error
	// MarkDispatched saves the dispatch time unless one is already stored.
	MarkDispatched(ctx context.Context, n *notification.Notification) error
	// RecordDispatchFailure saves the attempt count and next attempt time of
	// a notification that is still undispatched.
	RecordDispatchFailure(ctx context.Context, n *notification.Notification) error
	// ListUndispatched returns up to limit notifications due at now, oldest
	// first, locked against concurrent relays. Parked notifications and those
	// waiting for their next attempt are left out.
	ListUndispatched(ctx context.Context, now time.Time, limit int) ([]*notification.Notification, error)
}

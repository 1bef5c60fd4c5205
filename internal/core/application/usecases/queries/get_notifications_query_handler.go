package queries

import (
	"context"
	"time"

	"clinicmeals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const notificationsSQL = `
	SELECT id, order_id, message, read, created_at
	FROM notifications
	WHERE recipient_id = $1 AND (NOT $2::boolean OR NOT read)
	ORDER BY created_at DESC
	LIMIT $3`

type GetNotificationsQueryHandler struct {
	db Querier
}

func NewGetNotificationsQueryHandler(db Querier) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

func (h GetNotificationsQueryHandler) Handle(ctx context.Context, q GetNotificationsQuery) ([]NotificationView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.Query(ctx, notificationsSQL, q.Actor().ID().Bytes(), q.UnreadOnly(), NotificationsPageSize)
	if err != nil {
		return nil, errs.NewPersistenceError("notifications select", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (NotificationView, error) {
		var (
			id, orderID uuid.UUID
			v           NotificationView
			createdAt   time.Time
		)
		if err := row.Scan(&id, &orderID, &v.Message, &v.Read, &createdAt); err != nil {
			return NotificationView{}, err
		}
		v.CreatedAt = createdAt
		var err error
		if v.ID, err = toUUID(id); err != nil {
			return NotificationView{}, err
		}
		if v.OrderID, err = toUUID(orderID); err != nil {
			return NotificationView{}, err
		}
		return v, nil
	})
	if err != nil {
		return nil, errs.NewPersistenceError("notifications scan", err)
	}
	return views, nil
}

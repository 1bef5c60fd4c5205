// Package queries contains the read side. Handlers run plain SQL through pgx
// against the same schema the write side maintains through GORM, and return
// flat views instead of aggregates.
package queries

import (
	"context"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool the handlers need.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LifecycleView is the status part shared by the order views.
type LifecycleView struct {
	Status      order.Status
	CreatedAt   time.Time
	PreparedAt  *time.Time
	DeliveredAt *time.Time
}

func lifecycleView(status string, createdAt time.Time, preparedAt, deliveredAt *time.Time) (LifecycleView, error) {
	s, err := order.StatusFromString(status)
	if err != nil {
		return LifecycleView{}, err
	}
	return LifecycleView{Status: s, CreatedAt: createdAt, PreparedAt: preparedAt, DeliveredAt: deliveredAt}, nil
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

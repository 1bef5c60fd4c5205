package notificationrepo

import (
	"context"
	"errors"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/notification"
	"clinicmeals/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormNotificationRepository is the notification outbox. Rows are written
// in the transaction of the status change that produced them and marked
// dispatched by the relay.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{db: db, tracker: tracker}
}

func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("notification insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormNotificationRepository) MarkRead(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("read", aggregate.IsRead())
	if result.Error != nil {
		return errs.NewPersistenceError("notification read update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// MarkDispatched keeps the first stored dispatch time; a second call for the
// same row changes nothing.
func (r *GormNotificationRepository) MarkDispatched(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsDispatched() {
		return errs.NewValueIsRequiredError("dispatched at")
	}

	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ? AND dispatched_at IS NULL", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"dispatched_at":   aggregate.DispatchedAt(),
			"next_attempt_at": nil,
		})
	if result.Error != nil {
		return errs.NewPersistenceError("notification dispatch update", result.Error)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormNotificationRepository) RecordDispatchFailure(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	state := aggregate.Dispatch()
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ? AND dispatched_at IS NULL", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"dispatch_attempts": state.Attempts,
			"next_attempt_at":   state.NextAttemptAt,
		})
	if result.Error != nil {
		return errs.NewPersistenceError("notification dispatch failure update", result.Error)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, errs.NewPersistenceError("notification select", err)
	}

	return toDomain(dto)
}

// ListUndispatched locks the returned rows until the surrounding transaction
// ends. Rows locked by another relay are skipped. A row being marked read is
// locked too and is picked up by the next run.
func (r *GormNotificationRepository) ListUndispatched(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("dispatched_at IS NULL").
		Where("dispatch_attempts < ?", notification.MaxDispatchAttempts).
		Where("(next_attempt_at IS NULL OR next_attempt_at <= ?)", now).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("notification select", err)
	}

	result := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

package notificationrepo

import (
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID      uuid.UUID `gorm:"type:uuid"`
	OrderID          uuid.UUID `gorm:"type:uuid"`
	Message          string
	Read             bool
	CreatedAt        time.Time
	DispatchedAt     *time.Time
	DispatchAttempts int
	NextAttemptAt    *time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:               n.ID().Bytes(),
		RecipientID:      n.RecipientID().Bytes(),
		OrderID:          n.OrderID().Bytes(),
		Message:          n.Message(),
		Read:             n.IsRead(),
		CreatedAt:        n.CreatedAt(),
		DispatchedAt:     n.DispatchedAt(),
		DispatchAttempts: n.Dispatch().Attempts,
		NextAttemptAt:    n.Dispatch().NextAttemptAt,
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, recipientID, orderID, dto.Message, dto.Read, dto.CreatedAt,
		notification.DispatchState{
			DispatchedAt:  dto.DispatchedAt,
			Attempts:      dto.DispatchAttempts,
			NextAttemptAt: dto.NextAttemptAt,
		})
}

package services

import (
	"fmt"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/notification"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/pkg/errs"
)

func getNotificationTemplates() map[order.Status]string {
	//nolint:exhaustive // only these statuses notify
	return map[order.Status]string{
		order.Preparing:        "Votre commande « %s » est en cours de préparation.",
		order.ReadyForDelivery: "Votre commande « %s » est prête pour la livraison.",
		order.Delivered:        "Votre commande « %s » a été livrée.",
	}
}

// NotificationEmitter derives the message of a status change.
type NotificationEmitter struct{}

func NewNotificationEmitter() NotificationEmitter {
	return NotificationEmitter{}
}

// Notifies reports whether entering status produces a notification.
func (NotificationEmitter) Notifies(status order.Status) bool {
	_, ok := getNotificationTemplates()[status]
	return ok
}

// Emit returns the notification for o entering its current status, or nil
// when that status does not notify. Failures are *errs.NotificationError.
func (e NotificationEmitter) Emit(o order.Order, now time.Time) (*notification.Notification, error) {
	tmpl, ok := getNotificationTemplates()[o.Status()]
	if !ok {
		return nil, nil
	}

	recipient := o.Recipient()
	n, err := notification.NewNotification(
		kernel.NewUUID(), recipient, o.ID(), fmt.Sprintf(tmpl, o.MenuName()), now)
	if err != nil {
		return nil, errs.NewNotificationError(recipient.String(), err)
	}
	return n, nil
}

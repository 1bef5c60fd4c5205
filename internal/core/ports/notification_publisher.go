package ports

import (
	"context"
	"time"
)

// NotificationMessage is the payload handed to the external sink.
type NotificationMessage struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	OrderID     string    `json:"order_id"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationPublisher delivers notifications outside the service (Kafka,
// RabbitMQ or the log).
type NotificationPublisher interface {
	Publish(ctx context.Context, msg NotificationMessage) error
	Close() error
}

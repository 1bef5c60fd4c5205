// Package logsink writes notifications to the service log. It is the sink
// used when no broker is configured.
package logsink

import (
	"context"
	"log/slog"

	"clinicmeals/internal/core/ports"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "notification_log")}
}

func (p *Publisher) Publish(ctx context.Context, msg ports.NotificationMessage) error {
	p.logger.InfoContext(ctx, "notification",
		"notification_id", msg.ID,
		"recipient_id", msg.RecipientID,
		"order_id", msg.OrderID,
		"message", msg.Message,
	)
	return nil
}

func (p *Publisher) Close() error { return nil }

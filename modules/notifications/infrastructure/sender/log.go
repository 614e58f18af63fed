// Package sender implements notification delivery.
package sender

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rai/storefront-checkout-go/modules/notifications/domain"
)

// LogSender writes notifications to the log and keeps them for inspection.
type LogSender struct {
	logger *slog.Logger

	mu   sync.Mutex
	sent []domain.Notification
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, n domain.Notification) error {
	s.logger.InfoContext(ctx, "sending notification",
		slog.String("kind", n.Kind),
		slog.String("order_id", n.OrderID),
		slog.String("subject", n.Subject),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
	return nil
}

// Sent returns the notifications sent so far.
func (s *LogSender) Sent() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.sent...)
}

var _ domain.Sender = (*LogSender)(nil)

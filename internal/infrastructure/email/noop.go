package email

import (
	"context"

	"helpdesk/internal/domain/ticket"
)

// NoopNotifier drops every notification; used when email is disabled.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) TicketCreated(ctx context.Context, t *ticket.Ticket) error {
	return nil
}

func (n *NoopNotifier) TicketResolved(ctx context.Context, t *ticket.Ticket) error {
	return nil
}

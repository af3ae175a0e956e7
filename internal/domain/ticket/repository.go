package ticket

import (
	"context"
	"errors"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// ErrNotFound is the sentinel returned by repositories when no ticket (or
// comment) matches. Lookups by malformed or unknown ids must map to this
// error, never panic or surface a storage failure.
var ErrNotFound = errors.New("ticket not found")

// TicketFilter narrows and paginates List results.
type TicketFilter struct {
	Status *vo.TicketStatus
	// Search is matched case-insensitively as a substring of the subject title.
	Search   string
	Page     int
	PageSize int
}

// Stats is the dashboard counter set.
type Stats struct {
	Total    int64
	Open     int64
	Resolved int64
	Closed   int64
	Today    int64
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetBySerial(ctx context.Context, serial string) (*Ticket, error)
	// List returns tickets ordered by creation time descending with the id as
	// tiebreaker, plus the total match count before pagination.
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	// AppendActivities inserts entries as individual rows, preserving the
	// order given. Appends are atomic at the storage layer so concurrent
	// appends to the same ticket are never lost.
	AppendActivities(ctx context.Context, ticketID uint, entries []*ActivityEntry) error
	GetActivities(ctx context.Context, ticketID uint) ([]*ActivityEntry, error)
	// GetStats counts tickets overall and per lifecycle bucket; todayStart
	// bounds the "created today" counter.
	GetStats(ctx context.Context, todayStart time.Time) (*Stats, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// GetByTicketID returns comments oldest first.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
}

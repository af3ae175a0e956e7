package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Well-known activity actions. Free-text actions from the dashboard are also
// accepted; these constants cover the entries the service writes itself.
const (
	ActionTicketCreated   = "Ticket Created"
	ActionStatusChanged   = "Status Changed"
	ActionPriorityChanged = "Priority Changed"
	ActionCategoryChanged = "Category Changed"
	ActionSubjectUpdated  = "Subject Updated"
	ActionRemarksUpdated  = "Resolved Remarks Updated"
)

const maxActivityDetailLength = 1000

// ActivityEntry is one immutable line of a ticket's audit trail. Entries are
// append-only; ordering is insertion order.
type ActivityEntry struct {
	id        uint
	ticketID  uint
	actor     string
	action    string
	fromValue string
	toValue   string
	detail    string
	createdAt time.Time
}

func NewActivityEntry(actor, action, fromValue, toValue, detail string) (*ActivityEntry, error) {
	if len(actor) == 0 {
		return nil, fmt.Errorf("activity actor is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("activity action is required")
	}
	if len(detail) > maxActivityDetailLength {
		return nil, fmt.Errorf("activity detail exceeds maximum length of %d characters", maxActivityDetailLength)
	}

	return &ActivityEntry{
		actor:     actor,
		action:    action,
		fromValue: fromValue,
		toValue:   toValue,
		detail:    detail,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructActivityEntry(
	id uint,
	ticketID uint,
	actor, action, fromValue, toValue, detail string,
	createdAt time.Time,
) (*ActivityEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("activity ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("activity ticket ID is required")
	}

	return &ActivityEntry{
		id:        id,
		ticketID:  ticketID,
		actor:     actor,
		action:    action,
		fromValue: fromValue,
		toValue:   toValue,
		detail:    detail,
		createdAt: createdAt,
	}, nil
}

func (a *ActivityEntry) ID() uint {
	return a.id
}

func (a *ActivityEntry) TicketID() uint {
	return a.ticketID
}

func (a *ActivityEntry) Actor() string {
	return a.actor
}

func (a *ActivityEntry) Action() string {
	return a.action
}

func (a *ActivityEntry) FromValue() string {
	return a.fromValue
}

func (a *ActivityEntry) ToValue() string {
	return a.toValue
}

func (a *ActivityEntry) Detail() string {
	return a.detail
}

func (a *ActivityEntry) CreatedAt() time.Time {
	return a.createdAt
}

func (a *ActivityEntry) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("activity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("activity ID cannot be zero")
	}
	a.id = id
	return nil
}

// BindTicket associates an unsaved entry with its ticket before persistence.
func (a *ActivityEntry) BindTicket(ticketID uint) error {
	if a.ticketID != 0 && a.ticketID != ticketID {
		return fmt.Errorf("activity entry already bound to ticket %d", a.ticketID)
	}
	if ticketID == 0 {
		return fmt.Errorf("activity ticket ID cannot be zero")
	}
	a.ticketID = ticketID
	return nil
}

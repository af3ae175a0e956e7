package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusOpen       TicketStatus = "open"
	StatusHold       TicketStatus = "hold"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusOpen:       true,
	StatusHold:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// ticketStatusTransitions lists the allowed next states for each status.
// The current status itself is always a permitted no-op and is not listed.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusNew: {
		StatusOpen,
	},
	StatusOpen: {
		StatusInProgress,
		StatusHold,
		StatusResolved,
		StatusClosed,
	},
	StatusInProgress: {
		StatusHold,
		StatusResolved,
		StatusClosed,
	},
	StatusHold: {
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// CanTransitionTo reports whether newStatus is an allowed next state.
// A transition to the current status is always allowed as a no-op.
func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	if ts == newStatus {
		return validTicketStatuses[ts]
	}

	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsHold() bool {
	return ts == StatusHold
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// IsTerminal reports whether no further transitions are possible.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// AllStatuses returns every valid status, in lifecycle order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{
		StatusNew,
		StatusOpen,
		StatusHold,
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	}
}

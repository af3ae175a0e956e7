package valueobjects

import "fmt"

type TicketType string

const (
	TypeSupport   TicketType = "support"
	TypeComplaint TicketType = "complaint"
	TypeFeedback  TicketType = "feedback"
)

var validTicketTypes = map[TicketType]bool{
	TypeSupport:   true,
	TypeComplaint: true,
	TypeFeedback:  true,
}

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return validTicketTypes[t]
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}

package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	maxRemarksLength     = 2000
)

// Subject is the mutable title/description pair of a ticket.
type Subject struct {
	Title       string
	Description string
}

// Attachment describes one uploaded file linked to a ticket.
type Attachment struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Requester identifies the end user who submitted the ticket.
type Requester struct {
	Name    string
	Email   string
	Contact string
}

// Ticket is the aggregate root of the helpdesk domain. The serial number is
// assigned exactly once at creation and never changes afterwards.
type Ticket struct {
	id              uint
	serial          string
	requester       Requester
	subject         Subject
	category        vo.Category
	priority        vo.Priority
	ticketType      vo.TicketType
	status          vo.TicketStatus
	organizationID  uint
	platformID      uint
	resolvedRemarks string
	attachments     []Attachment
	createdAt       time.Time
	updatedAt       time.Time
}

func NewTicket(
	requester Requester,
	subject Subject,
	category vo.Category,
	priority vo.Priority,
	ticketType vo.TicketType,
	organizationID uint,
	platformID uint,
	attachments []Attachment,
) (*Ticket, error) {
	if len(subject.Title) == 0 {
		return nil, fmt.Errorf("subject title is required")
	}
	if len(subject.Title) > maxTitleLength {
		return nil, fmt.Errorf("subject title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(subject.Description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(subject.Description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization is required")
	}
	if platformID == 0 {
		return nil, fmt.Errorf("platform is required")
	}

	if attachments == nil {
		attachments = []Attachment{}
	}

	now := biztime.NowUTC()

	return &Ticket{
		requester:      requester,
		subject:        subject,
		category:       category,
		priority:       priority,
		ticketType:     ticketType,
		status:         vo.StatusNew,
		organizationID: organizationID,
		platformID:     platformID,
		attachments:    attachments,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	serial string,
	requester Requester,
	subject Subject,
	category vo.Category,
	priority vo.Priority,
	ticketType vo.TicketType,
	status vo.TicketStatus,
	organizationID uint,
	platformID uint,
	resolvedRemarks string,
	attachments []Attachment,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(serial) == 0 {
		return nil, fmt.Errorf("ticket serial is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Ticket{
		id:              id,
		serial:          serial,
		requester:       requester,
		subject:         subject,
		category:        category,
		priority:        priority,
		ticketType:      ticketType,
		status:          status,
		organizationID:  organizationID,
		platformID:      platformID,
		resolvedRemarks: resolvedRemarks,
		attachments:     attachments,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Serial() string {
	return t.serial
}

func (t *Ticket) Requester() Requester {
	return t.requester
}

func (t *Ticket) Subject() Subject {
	return t.subject
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) OrganizationID() uint {
	return t.organizationID
}

func (t *Ticket) PlatformID() uint {
	return t.platformID
}

func (t *Ticket) ResolvedRemarks() string {
	return t.resolvedRemarks
}

func (t *Ticket) Attachments() []Attachment {
	attachmentsCopy := make([]Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetSerial assigns the serial number. It may only be called once: the serial
// is immutable after creation.
func (t *Ticket) SetSerial(serial string) error {
	if len(t.serial) > 0 {
		return fmt.Errorf("ticket serial is already set")
	}
	if len(serial) == 0 {
		return fmt.Errorf("ticket serial cannot be empty")
	}
	t.serial = serial
	return nil
}

// ChangeStatus applies a status transition. The transition must be allowed by
// the lifecycle table, and a transition into resolved requires resolved
// remarks to already be present on the ticket.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	if newStatus.IsResolved() && len(t.resolvedRemarks) == 0 {
		return fmt.Errorf("resolved remarks are required before resolving")
	}

	t.status = newStatus
	t.touch()

	return nil
}

// Resolve sets the resolved remarks and transitions into resolved as a single
// state change, so the status half is never persisted without the remarks half.
func (t *Ticket) Resolve(remarks string) error {
	if err := t.SetResolvedRemarks(remarks); err != nil {
		return err
	}
	return t.ChangeStatus(vo.StatusResolved)
}

func (t *Ticket) SetResolvedRemarks(remarks string) error {
	if len(remarks) == 0 {
		return fmt.Errorf("resolved remarks cannot be empty")
	}
	if len(remarks) > maxRemarksLength {
		return fmt.Errorf("resolved remarks exceed maximum length of %d characters", maxRemarksLength)
	}

	t.resolvedRemarks = remarks
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.touch()
	return nil
}

func (t *Ticket) ChangeCategory(newCategory vo.Category) error {
	if !newCategory.IsValid() {
		return fmt.Errorf("invalid category: %s", newCategory)
	}

	if t.category == newCategory {
		return nil
	}

	t.category = newCategory
	t.touch()
	return nil
}

// UpdateSubject merges the subject key by key: a nil pointer leaves the
// current value untouched.
func (t *Ticket) UpdateSubject(title, description *string) error {
	if title != nil {
		if len(*title) == 0 {
			return fmt.Errorf("subject title cannot be empty")
		}
		if len(*title) > maxTitleLength {
			return fmt.Errorf("subject title exceeds maximum length of %d characters", maxTitleLength)
		}
		t.subject.Title = *title
	}

	if description != nil {
		if len(*description) == 0 {
			return fmt.Errorf("description cannot be empty")
		}
		if len(*description) > maxDescriptionLength {
			return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
		}
		t.subject.Description = *description
	}

	t.touch()
	return nil
}

// ReplaceAttachments overwrites the attachment set.
func (t *Ticket) ReplaceAttachments(attachments []Attachment) {
	if attachments == nil {
		attachments = []Attachment{}
	}
	t.attachments = attachments
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) Validate() error {
	if len(t.subject.Title) == 0 {
		return fmt.Errorf("subject title is required")
	}
	if len(t.subject.Description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.ticketType.IsValid() {
		return fmt.Errorf("invalid ticket type")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.status.IsResolved() && len(t.resolvedRemarks) == 0 {
		return fmt.Errorf("resolved ticket requires resolved remarks")
	}
	return nil
}

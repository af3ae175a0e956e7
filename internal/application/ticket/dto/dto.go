package dto

import (
	"time"

	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
)

type AttachmentDTO struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// TicketDTO is the full ticket view returned by detail endpoints. Organization
// and Platform carry the resolved names; they are empty when the referenced
// record has been removed.
type TicketDTO struct {
	ID               uint               `json:"id"`
	Serial           string             `json:"serial"`
	RequesterName    string             `json:"requester_name"`
	RequesterEmail   string             `json:"requester_email"`
	RequesterContact string             `json:"requester_contact"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Category         string             `json:"category"`
	Priority         string             `json:"priority"`
	Type             string             `json:"type"`
	Status           string             `json:"status"`
	OrganizationID   uint               `json:"organization_id"`
	Organization     string             `json:"organization"`
	PlatformID       uint               `json:"platform_id"`
	Platform         string             `json:"platform"`
	ResolvedRemarks  string             `json:"resolved_remarks"`
	Attachments      []AttachmentDTO    `json:"attachments"`
	Activities       []ActivityEntryDTO `json:"activities,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

type ActivityEntryDTO struct {
	ID        uint      `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	FromValue string    `json:"from_value,omitempty"`
	ToValue   string    `json:"to_value,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentDTO carries both the raw markdown content and the sanitized HTML
// rendering for the dashboard.
type CommentDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	CreatedAt   time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID             uint      `json:"id"`
	Serial         string    `json:"serial"`
	RequesterName  string    `json:"requester_name"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Priority       string    `json:"priority"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	Organization   string    `json:"organization"`
	Platform       string    `json:"platform"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type StatsDTO struct {
	Total    int64 `json:"total"`
	Open     int64 `json:"open"`
	Resolved int64 `json:"resolved"`
	Closed   int64 `json:"closed"`
	Today    int64 `json:"today"`
}

type ReferenceDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ToTicketDTO(t *ticket.Ticket, orgName, platformName string) *TicketDTO {
	if t == nil {
		return nil
	}

	attachments := make([]AttachmentDTO, 0, len(t.Attachments()))
	for _, a := range t.Attachments() {
		attachments = append(attachments, AttachmentDTO{ID: a.ID, URL: a.URL, Filename: a.Filename})
	}

	return &TicketDTO{
		ID:               t.ID(),
		Serial:           t.Serial(),
		RequesterName:    t.Requester().Name,
		RequesterEmail:   t.Requester().Email,
		RequesterContact: t.Requester().Contact,
		Title:            t.Subject().Title,
		Description:      t.Subject().Description,
		Category:         t.Category().String(),
		Priority:         t.Priority().String(),
		Type:             t.Type().String(),
		Status:           t.Status().String(),
		OrganizationID:   t.OrganizationID(),
		Organization:     orgName,
		PlatformID:       t.PlatformID(),
		Platform:         platformName,
		ResolvedRemarks:  t.ResolvedRemarks(),
		Attachments:      attachments,
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}
}

func ToActivityEntryDTO(e *ticket.ActivityEntry) ActivityEntryDTO {
	return ActivityEntryDTO{
		ID:        e.ID(),
		Actor:     e.Actor(),
		Action:    e.Action(),
		FromValue: e.FromValue(),
		ToValue:   e.ToValue(),
		Detail:    e.Detail(),
		CreatedAt: e.CreatedAt(),
	}
}

func ToActivityEntryDTOs(entries []*ticket.ActivityEntry) []ActivityEntryDTO {
	dtos := make([]ActivityEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, ToActivityEntryDTO(e))
	}
	return dtos
}

func ToCommentDTO(c *ticket.Comment, contentHTML string) CommentDTO {
	return CommentDTO{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		Author:      c.Author(),
		Content:     c.Content(),
		ContentHTML: contentHTML,
		CreatedAt:   c.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket, orgName, platformName string) TicketListItemDTO {
	return TicketListItemDTO{
		ID:            t.ID(),
		Serial:        t.Serial(),
		RequesterName: t.Requester().Name,
		Title:         t.Subject().Title,
		Category:      t.Category().String(),
		Priority:      t.Priority().String(),
		Type:          t.Type().String(),
		Status:        t.Status().String(),
		Organization:  orgName,
		Platform:      platformName,
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func ToStatsDTO(s *ticket.Stats) *StatsDTO {
	if s == nil {
		return nil
	}
	return &StatsDTO{
		Total:    s.Total,
		Open:     s.Open,
		Resolved: s.Resolved,
		Closed:   s.Closed,
		Today:    s.Today,
	}
}

func ToReferenceDTO(id uint, name string) ReferenceDTO {
	return ReferenceDTO{ID: id, Name: name}
}

func ToOrganizationDTOs(orgs []*reference.Organization) []ReferenceDTO {
	dtos := make([]ReferenceDTO, 0, len(orgs))
	for _, o := range orgs {
		dtos = append(dtos, ReferenceDTO{ID: o.ID(), Name: o.Name()})
	}
	return dtos
}

func ToPlatformDTOs(platforms []*reference.Platform) []ReferenceDTO {
	dtos := make([]ReferenceDTO, 0, len(platforms))
	for _, p := range platforms {
		dtos = append(dtos, ReferenceDTO{ID: p.ID(), Name: p.Name()})
	}
	return dtos
}

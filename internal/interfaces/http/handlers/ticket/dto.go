package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
)

type AttachmentRequest struct {
	ID       string `json:"id" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Filename string `json:"filename"`
}

type CreateTicketRequest struct {
	RequesterName    string              `json:"requester_name" binding:"required"`
	RequesterEmail   string              `json:"requester_email" binding:"required,email"`
	RequesterContact string              `json:"requester_contact"`
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description" binding:"required"`
	Category         string              `json:"category" binding:"required"`
	Priority         string              `json:"priority"`
	Type             string              `json:"type" binding:"required"`
	Organization     string              `json:"organization" binding:"required"`
	Platform         string              `json:"platform" binding:"required"`
	Attachments      []AttachmentRequest `json:"attachments"`
}

func (r CreateTicketRequest) ToCommand(actor string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		RequesterName:    r.RequesterName,
		RequesterEmail:   r.RequesterEmail,
		RequesterContact: r.RequesterContact,
		Title:            r.Title,
		Description:      r.Description,
		Category:         r.Category,
		Priority:         r.Priority,
		Type:             r.Type,
		Organization:     r.Organization,
		Platform:         r.Platform,
		Attachments:      toAttachmentInputs(r.Attachments),
		Actor:            actor,
	}
}

// ActivityEntryRequest is one caller-supplied audit-trail line. The actor is
// always taken from the session, never from the body.
type ActivityEntryRequest struct {
	Action    string `json:"action" binding:"required"`
	FromValue string `json:"from_value"`
	ToValue   string `json:"to_value"`
	Detail    string `json:"detail"`
}

// PatchTicketRequest mirrors the allow-listed mutable fields. Absent fields
// stay untouched; unknown fields are ignored by the JSON decoder. Activities
// are appended to the audit trail ahead of the field mutations.
type PatchTicketRequest struct {
	Title           *string                `json:"title"`
	Description     *string                `json:"description"`
	Category        *string                `json:"category"`
	Priority        *string                `json:"priority"`
	Status          *string                `json:"status"`
	ResolvedRemarks *string                `json:"resolved_remarks"`
	Attachments     *[]AttachmentRequest   `json:"attachments"`
	Activities      []ActivityEntryRequest `json:"activities"`
}

func (r PatchTicketRequest) ToCommand(ticketID uint, actor string) usecases.PatchTicketCommand {
	cmd := usecases.PatchTicketCommand{
		TicketID:        ticketID,
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Priority:        r.Priority,
		Status:          r.Status,
		ResolvedRemarks: r.ResolvedRemarks,
		Actor:           actor,
	}
	if r.Attachments != nil {
		inputs := toAttachmentInputs(*r.Attachments)
		cmd.Attachments = &inputs
	}
	for _, a := range r.Activities {
		cmd.Activities = append(cmd.Activities, usecases.ActivityEntryInput{
			Action:    a.Action,
			FromValue: a.FromValue,
			ToValue:   a.ToValue,
			Detail:    a.Detail,
		})
	}
	return cmd
}

type ChangeStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

type UpdateRemarksRequest struct {
	Remarks string `json:"remarks" binding:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type ListTicketsRequest struct {
	Status   string `form:"status"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (r ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:   r.Status,
		Search:   r.Search,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func toAttachmentInputs(reqs []AttachmentRequest) []usecases.AttachmentInput {
	if len(reqs) == 0 {
		return nil
	}
	inputs := make([]usecases.AttachmentInput, 0, len(reqs))
	for _, a := range reqs {
		inputs = append(inputs, usecases.AttachmentInput{
			ID:       a.ID,
			URL:      a.URL,
			Filename: a.Filename,
		})
	}
	return inputs
}

// parseTicketID treats a malformed id the same as an unknown one: no ticket
// can live at that path, so the response is a 404, never a validation error.
func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewNotFoundError("ticket not found")
	}
	return uint(id), nil
}

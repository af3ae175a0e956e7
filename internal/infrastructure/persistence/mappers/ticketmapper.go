package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ActivityToModel(e *ticket.ActivityEntry) *models.ActivityModel
	ActivityToDomain(model *models.ActivityModel) (*ticket.ActivityEntry, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
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
		PlatformID:       t.PlatformID(),
		ResolvedRemarks:  t.ResolvedRemarks(),
		CreatedAt:        t.CreatedAt().UnixMilli(),
		UpdatedAt:        t.UpdatedAt().UnixMilli(),
	}

	// Attachments marshal to a JSON array, never null, so readers can range
	// without a nil check.
	attachmentsJSON, _ := json.Marshal(t.Attachments())
	model.Attachments = attachmentsJSON

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var attachments []ticket.Attachment
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket attachments: %w", err)
		}
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Serial,
		ticket.Requester{
			Name:    model.RequesterName,
			Email:   model.RequesterEmail,
			Contact: model.RequesterContact,
		},
		ticket.Subject{
			Title:       model.Title,
			Description: model.Description,
		},
		vo.Category(model.Category),
		vo.Priority(model.Priority),
		vo.TicketType(model.Type),
		vo.TicketStatus(model.Status),
		model.OrganizationID,
		model.PlatformID,
		model.ResolvedRemarks,
		attachments,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}

	return t, nil
}

func (m *TicketMapperImpl) ActivityToModel(e *ticket.ActivityEntry) *models.ActivityModel {
	return &models.ActivityModel{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		Actor:     e.Actor(),
		Action:    e.Action(),
		FromValue: e.FromValue(),
		ToValue:   e.ToValue(),
		Detail:    e.Detail(),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ActivityToDomain(model *models.ActivityModel) (*ticket.ActivityEntry, error) {
	e, err := ticket.ReconstructActivityEntry(
		model.ID,
		model.TicketID,
		model.Actor,
		model.Action,
		model.FromValue,
		model.ToValue,
		model.Detail,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct activity entry %d: %w", model.ID, err)
	}
	return e, nil
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Author:    c.Author(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	c, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.Author,
		model.Content,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment %d: %w", model.ID, err)
	}
	return c, nil
}

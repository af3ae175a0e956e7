package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type ListCommentsQuery struct {
	TicketID uint
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	markdown markdown.Service,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		if err == ticket.ErrNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	results := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		html, err := uc.markdown.ToHTMLSanitized(c.Content())
		if err != nil {
			uc.logger.Warnw("failed to render comment markdown", "comment_id", c.ID(), "error", err)
			html = ""
		}
		results = append(results, dto.ToCommentDTO(c, html))
	}

	return results, nil
}

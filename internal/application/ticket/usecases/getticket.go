package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	// IncludeActivities loads the audit trail alongside the ticket.
	IncludeActivities bool
}

type GetTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	orgRepo      reference.OrganizationRepository
	platformRepo reference.PlatformRepository
	logger       logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	orgRepo reference.OrganizationRepository,
	platformRepo reference.PlatformRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:   ticketRepo,
		orgRepo:      orgRepo,
		platformRepo: platformRepo,
		logger:       logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err == ticket.ErrNotFound {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	orgName, platformName := referenceNames(ctx, uc.orgRepo, uc.platformRepo, t)
	result := dto.ToTicketDTO(t, orgName, platformName)

	if query.IncludeActivities {
		activities, err := uc.ticketRepo.GetActivities(ctx, t.ID())
		if err != nil {
			uc.logger.Errorw("failed to load ticket activities", "ticket_id", t.ID(), "error", err)
			return nil, err
		}
		result.Activities = dto.ToActivityEntryDTOs(activities)
	}

	return result, nil
}

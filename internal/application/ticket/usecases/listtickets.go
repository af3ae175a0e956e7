package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	// Status filters by lifecycle state when non-empty.
	Status string
	// Search matches a case-insensitive substring of the title.
	Search   string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo   ticket.TicketRepository
	orgRepo      reference.OrganizationRepository
	platformRepo reference.PlatformRepository
	logger       logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	orgRepo reference.OrganizationRepository,
	platformRepo reference.PlatformRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:   ticketRepo,
		orgRepo:      orgRepo,
		platformRepo: platformRepo,
		logger:       logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		Search:   query.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	// Reference names are looked up through a request-local cache so a page of
	// tickets from the same organization costs one lookup, not one per row.
	orgNames := map[uint]string{}
	platformNames := map[uint]string{}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		orgName, ok := orgNames[t.OrganizationID()]
		if !ok {
			if org, err := uc.orgRepo.GetByID(ctx, t.OrganizationID()); err == nil {
				orgName = org.Name()
			}
			orgNames[t.OrganizationID()] = orgName
		}

		platformName, ok := platformNames[t.PlatformID()]
		if !ok {
			if platform, err := uc.platformRepo.GetByID(ctx, t.PlatformID()); err == nil {
				platformName = platform.Name()
			}
			platformNames[t.PlatformID()] = platformName
		}

		items = append(items, dto.ToTicketListItemDTO(t, orgName, platformName))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

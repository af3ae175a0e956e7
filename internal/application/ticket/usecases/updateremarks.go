package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateRemarksCommand struct {
	TicketID uint
	Remarks  string
	Actor    string
}

// UpdateRemarksUseCase sets the resolved remarks without touching the status,
// so agents can draft remarks before resolving.
type UpdateRemarksUseCase struct {
	ticketRepo   ticket.TicketRepository
	orgRepo      reference.OrganizationRepository
	platformRepo reference.PlatformRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewUpdateRemarksUseCase(
	ticketRepo ticket.TicketRepository,
	orgRepo reference.OrganizationRepository,
	platformRepo reference.PlatformRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateRemarksUseCase {
	return &UpdateRemarksUseCase{
		ticketRepo:   ticketRepo,
		orgRepo:      orgRepo,
		platformRepo: platformRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *UpdateRemarksUseCase) Execute(ctx context.Context, cmd UpdateRemarksCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update remarks use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Actor) == 0 {
		return nil, errors.NewValidationError("actor is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err == ticket.ErrNotFound {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := t.SetResolvedRemarks(cmd.Remarks); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entry, err := ticket.NewActivityEntry(cmd.Actor, ticket.ActionRemarksUpdated, "", "", "")
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return uc.ticketRepo.AppendActivities(txCtx, t.ID(), []*ticket.ActivityEntry{entry})
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket remarks", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	orgName, platformName := referenceNames(ctx, uc.orgRepo, uc.platformRepo, t)
	return dto.ToTicketDTO(t, orgName, platformName), nil
}

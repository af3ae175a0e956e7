package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID uint
	Status   string
	// Remarks is required when transitioning into resolved and ignored
	// otherwise. It commits in the same transaction as the status change.
	Remarks string
	Actor   string
}

type ChangeStatusUseCase struct {
	ticketRepo   ticket.TicketRepository
	orgRepo      reference.OrganizationRepository
	platformRepo reference.PlatformRepository
	txManager    TransactionManager
	notifier     Notifier
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	orgRepo reference.OrganizationRepository,
	platformRepo reference.PlatformRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:   ticketRepo,
		orgRepo:      orgRepo,
		platformRepo: platformRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Actor) == 0 {
		return nil, errors.NewValidationError("actor is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err == ticket.ErrNotFound {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	from := t.Status()

	if newStatus.IsResolved() && cmd.Remarks != "" {
		if err := t.Resolve(cmd.Remarks); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var entries []*ticket.ActivityEntry
	if from != newStatus {
		entry, err := ticket.NewActivityEntry(cmd.Actor, ticket.ActionStatusChanged, from.String(), newStatus.String(), "")
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		entries = append(entries, entry)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return uc.ticketRepo.AppendActivities(txCtx, t.ID(), entries)
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "from", from.String(), "to", newStatus.String())

	if newStatus.IsResolved() && from != newStatus && uc.notifier != nil {
		goroutine.SafeGo(uc.logger, "ticket-resolved-notification", func() {
			if err := uc.notifier.TicketResolved(context.Background(), t); err != nil {
				uc.logger.Warnw("failed to send ticket resolved notification", "ticket_id", t.ID(), "error", err)
			}
		})
	}

	orgName, platformName := referenceNames(ctx, uc.orgRepo, uc.platformRepo, t)
	return dto.ToTicketDTO(t, orgName, platformName), nil
}

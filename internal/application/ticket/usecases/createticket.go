package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// AttachmentInput references an already-uploaded file by its storage key.
type AttachmentInput struct {
	ID       string
	URL      string
	Filename string
}

type CreateTicketCommand struct {
	RequesterName    string
	RequesterEmail   string
	RequesterContact string
	Title            string
	Description      string
	Category         string
	// Priority is optional; when empty the default applies.
	Priority string
	Type     string
	// Organization and Platform accept either a numeric id or an exact name.
	Organization string
	Platform     string
	Attachments  []AttachmentInput
	// Actor is the authenticated admin recorded in the audit trail.
	Actor string
}

type CreateTicketResult struct {
	TicketID  uint
	Serial    string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	orgRepo      reference.OrganizationRepository
	platformRepo reference.PlatformRepository
	serials      ticket.SerialAllocator
	txManager    TransactionManager
	notifier     Notifier
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	orgRepo reference.OrganizationRepository,
	platformRepo reference.PlatformRepository,
	serials ticket.SerialAllocator,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		orgRepo:      orgRepo,
		platformRepo: platformRepo,
		serials:      serials,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "requester", cmd.RequesterEmail)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	org, err := resolveOrganization(ctx, uc.orgRepo, cmd.Organization)
	if err != nil {
		uc.logger.Errorw("failed to resolve organization", "ref", cmd.Organization, "error", err)
		return nil, err
	}

	platform, err := resolvePlatform(ctx, uc.platformRepo, cmd.Platform)
	if err != nil {
		uc.logger.Errorw("failed to resolve platform", "ref", cmd.Platform, "error", err)
		return nil, err
	}

	priority, err := vo.NewPriorityOrDefault(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	attachments := make([]ticket.Attachment, 0, len(cmd.Attachments))
	for _, a := range cmd.Attachments {
		attachments = append(attachments, ticket.Attachment{ID: a.ID, URL: a.URL, Filename: a.Filename})
	}

	newTicket, err := ticket.NewTicket(
		ticket.Requester{Name: cmd.RequesterName, Email: cmd.RequesterEmail, Contact: cmd.RequesterContact},
		ticket.Subject{Title: cmd.Title, Description: cmd.Description},
		vo.Category(cmd.Category),
		priority,
		vo.TicketType(cmd.Type),
		org.ID(),
		platform.ID(),
		attachments,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// The serial is allocated before any ticket row exists. If the counter is
	// unavailable the whole creation aborts; no ticket is ever saved without
	// a serial.
	serialValue, err := uc.serials.Next(ctx, constants.SequenceTicket)
	if err != nil {
		uc.logger.Errorw("failed to allocate ticket serial", "error", err)
		return nil, errors.NewCounterUnavailableError("ticket serial counter unavailable", err.Error())
	}
	if err := newTicket.SetSerial(ticket.FormatSerial(serialValue)); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	entry, err := ticket.NewActivityEntry(cmd.Actor, ticket.ActionTicketCreated, "", vo.StatusNew.String(), "")
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}
		return uc.ticketRepo.AppendActivities(txCtx, newTicket.ID(), []*ticket.ActivityEntry{entry})
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "serial", newTicket.Serial())

	if uc.notifier != nil {
		goroutine.SafeGo(uc.logger, "ticket-created-notification", func() {
			if err := uc.notifier.TicketCreated(context.Background(), newTicket); err != nil {
				uc.logger.Warnw("failed to send ticket created notification", "ticket_id", newTicket.ID(), "error", err)
			}
		})
	}

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Serial:    newTicket.Serial(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.RequesterName) == 0 {
		return errors.NewValidationError("requester name is required")
	}

	if len(cmd.RequesterEmail) == 0 {
		return errors.NewValidationError("requester email is required")
	}

	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}

	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	if !vo.TicketType(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid ticket type")
	}

	if len(cmd.Actor) == 0 {
		return errors.NewValidationError("actor is required")
	}

	return nil
}

package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// PatchTicketCommand carries the allow-listed mutable fields. Nil pointers
// leave the field untouched; any field outside this set cannot be patched.
// Activities is an optional batch of audit-trail entries recorded, in the
// order given, ahead of the entries derived from the field mutations.
type PatchTicketCommand struct {
	TicketID        uint
	Title           *string
	Description     *string
	Category        *string
	Priority        *string
	Status          *string
	ResolvedRemarks *string
	Attachments     *[]AttachmentInput
	Activities      []ActivityEntryInput
	Actor           string
}

type ActivityEntryInput struct {
	Action    string
	FromValue string
	ToValue   string
	Detail    string
}

type PatchTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	orgRepo      reference.OrganizationRepository
	platformRepo reference.PlatformRepository
	txManager    TransactionManager
	notifier     Notifier
	logger       logger.Interface
}

func NewPatchTicketUseCase(
	ticketRepo ticket.TicketRepository,
	orgRepo reference.OrganizationRepository,
	platformRepo reference.PlatformRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *PatchTicketUseCase {
	return &PatchTicketUseCase{
		ticketRepo:   ticketRepo,
		orgRepo:      orgRepo,
		platformRepo: platformRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *PatchTicketUseCase) Execute(ctx context.Context, cmd PatchTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing patch ticket use case", "ticket_id", cmd.TicketID)

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

	entries := make([]*ticket.ActivityEntry, 0, len(cmd.Activities)+6)
	for _, a := range cmd.Activities {
		entry, err := ticket.NewActivityEntry(cmd.Actor, a.Action, a.FromValue, a.ToValue, a.Detail)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		entries = append(entries, entry)
	}

	changes, err := uc.applyChanges(t, cmd)
	if err != nil {
		uc.logger.Errorw("failed to apply ticket patch", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	entries = append(entries, changes...)

	resolvedNow := false
	for _, e := range changes {
		if e.Action() == ticket.ActionStatusChanged && e.ToValue() == vo.StatusResolved.String() {
			resolvedNow = true
		}
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
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket patched successfully", "ticket_id", t.ID(), "changes", len(entries))

	if resolvedNow && uc.notifier != nil {
		goroutine.SafeGo(uc.logger, "ticket-resolved-notification", func() {
			if err := uc.notifier.TicketResolved(context.Background(), t); err != nil {
				uc.logger.Warnw("failed to send ticket resolved notification", "ticket_id", t.ID(), "error", err)
			}
		})
	}

	orgName, platformName := referenceNames(ctx, uc.orgRepo, uc.platformRepo, t)
	return dto.ToTicketDTO(t, orgName, platformName), nil
}

// applyChanges mutates the entity field by field and collects one activity
// entry per effective change. Remarks are applied before status so a patch
// that sets both resolves cleanly.
func (uc *PatchTicketUseCase) applyChanges(t *ticket.Ticket, cmd PatchTicketCommand) ([]*ticket.ActivityEntry, error) {
	entries := make([]*ticket.ActivityEntry, 0, 6)

	appendEntry := func(action, from, to, detail string) error {
		entry, err := ticket.NewActivityEntry(cmd.Actor, action, from, to, detail)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		entries = append(entries, entry)
		return nil
	}

	if cmd.ResolvedRemarks != nil && *cmd.ResolvedRemarks != t.ResolvedRemarks() {
		if err := t.SetResolvedRemarks(*cmd.ResolvedRemarks); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := appendEntry(ticket.ActionRemarksUpdated, "", "", ""); err != nil {
			return nil, err
		}
	}

	if cmd.Status != nil {
		newStatus, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		from := t.Status()
		if from != newStatus {
			if err := t.ChangeStatus(newStatus); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			if err := appendEntry(ticket.ActionStatusChanged, from.String(), newStatus.String(), ""); err != nil {
				return nil, err
			}
		}
	}

	if cmd.Priority != nil {
		newPriority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		from := t.Priority()
		if from != newPriority {
			if err := t.ChangePriority(newPriority); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			if err := appendEntry(ticket.ActionPriorityChanged, from.String(), newPriority.String(), ""); err != nil {
				return nil, err
			}
		}
	}

	if cmd.Category != nil {
		newCategory, err := vo.NewCategory(*cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		from := t.Category()
		if from != newCategory {
			if err := t.ChangeCategory(newCategory); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			if err := appendEntry(ticket.ActionCategoryChanged, from.String(), newCategory.String(), ""); err != nil {
				return nil, err
			}
		}
	}

	if cmd.Title != nil || cmd.Description != nil {
		fromTitle := t.Subject().Title
		if err := t.UpdateSubject(cmd.Title, cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		detail := ""
		if cmd.Title != nil && *cmd.Title != fromTitle {
			detail = fmt.Sprintf("title changed from %q", fromTitle)
		}
		if err := appendEntry(ticket.ActionSubjectUpdated, "", "", detail); err != nil {
			return nil, err
		}
	}

	if cmd.Attachments != nil {
		attachments := make([]ticket.Attachment, 0, len(*cmd.Attachments))
		for _, a := range *cmd.Attachments {
			attachments = append(attachments, ticket.Attachment{ID: a.ID, URL: a.URL, Filename: a.Filename})
		}
		t.ReplaceAttachments(attachments)
	}

	return entries, nil
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func newPatchUseCase(repo *mockTicketRepository) *PatchTicketUseCase {
	orgRepo := &mockOrganizationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*reference.Organization, error) {
			return nil, reference.ErrNotFound
		},
	}
	platformRepo := &mockPlatformRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*reference.Platform, error) {
			return nil, reference.ErrNotFound
		},
	}
	return NewPatchTicketUseCase(repo, orgRepo, platformRepo, &mockTransactionManager{}, nil, &mockLogger{})
}

func TestPatchTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("patches allow-listed fields and records activities", func(t *testing.T) {
		tk := reconstructedTicket(t, 5, vo.StatusOpen, "")
		var appended []*ticket.ActivityEntry

		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			AppendActivitiesFunc: func(ctx context.Context, ticketID uint, entries []*ticket.ActivityEntry) error {
				appended = entries
				return nil
			},
		}

		uc := newPatchUseCase(repo)
		result, err := uc.Execute(ctx, PatchTicketCommand{
			TicketID: 5,
			Title:    strPtr("Export fails on large accounts"),
			Priority: strPtr("high"),
			Status:   strPtr("in_progress"),
			Actor:    "admin@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Export fails on large accounts", result.Title)
		assert.Equal(t, "high", result.Priority)
		assert.Equal(t, "in_progress", result.Status)

		require.Len(t, appended, 3)
		assert.Equal(t, ticket.ActionStatusChanged, appended[0].Action())
		assert.Equal(t, "open", appended[0].FromValue())
		assert.Equal(t, "in_progress", appended[0].ToValue())
		assert.Equal(t, ticket.ActionPriorityChanged, appended[1].Action())
		assert.Equal(t, ticket.ActionSubjectUpdated, appended[2].Action())
	})

	t.Run("caller activity batch lands ahead of field changes", func(t *testing.T) {
		tk := reconstructedTicket(t, 5, vo.StatusOpen, "")
		var appended []*ticket.ActivityEntry

		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			AppendActivitiesFunc: func(ctx context.Context, ticketID uint, entries []*ticket.ActivityEntry) error {
				appended = entries
				return nil
			},
		}

		uc := newPatchUseCase(repo)
		_, err := uc.Execute(ctx, PatchTicketCommand{
			TicketID: 5,
			Priority: strPtr("high"),
			Activities: []ActivityEntryInput{
				{Action: "Phone Call Logged", Detail: "requester confirmed the outage window"},
				{Action: "Escalated", ToValue: "tier-2"},
			},
			Actor: "admin@example.com",
		})

		require.NoError(t, err)
		require.Len(t, appended, 3)
		assert.Equal(t, "Phone Call Logged", appended[0].Action())
		assert.Equal(t, "admin@example.com", appended[0].Actor())
		assert.Equal(t, "Escalated", appended[1].Action())
		assert.Equal(t, "tier-2", appended[1].ToValue())
		assert.Equal(t, ticket.ActionPriorityChanged, appended[2].Action())
	})

	t.Run("activity batch with empty action rejected", func(t *testing.T) {
		tk := reconstructedTicket(t, 5, vo.StatusOpen, "")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := newPatchUseCase(repo)
		_, err := uc.Execute(ctx, PatchTicketCommand{
			TicketID:   5,
			Activities: []ActivityEntryInput{{Detail: "no action given"}},
			Actor:      "admin@example.com",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("no-op patch records no activity", func(t *testing.T) {
		tk := reconstructedTicket(t, 5, vo.StatusOpen, "")
		appendCalled := false

		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			AppendActivitiesFunc: func(ctx context.Context, ticketID uint, entries []*ticket.ActivityEntry) error {
				appendCalled = true
				return nil
			},
		}

		uc := newPatchUseCase(repo)
		_, err := uc.Execute(ctx, PatchTicketCommand{
			TicketID: 5,
			Status:   strPtr("open"),
			Priority: strPtr("medium"),
			Actor:    "admin@example.com",
		})

		require.NoError(t, err)
		assert.False(t, appendCalled)
	})

	t.Run("resolving via patch requires remarks", func(t *testing.T) {
		tk := reconstructedTicket(t, 5, vo.StatusOpen, "")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := newPatchUseCase(repo)
		_, err := uc.Execute(ctx, PatchTicketCommand{
			TicketID: 5,
			Status:   strPtr("resolved"),
			Actor:    "admin@example.com",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("remarks and resolved in same patch", func(t *testing.T) {
		tk := reconstructedTicket(t, 5, vo.StatusOpen, "")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := newPatchUseCase(repo)
		result, err := uc.Execute(ctx, PatchTicketCommand{
			TicketID:        5,
			Status:          strPtr("resolved"),
			ResolvedRemarks: strPtr("patched the export job"),
			Actor:           "admin@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "resolved", result.Status)
		assert.Equal(t, "patched the export job", result.ResolvedRemarks)
	})

	t.Run("disallowed transition rejected", func(t *testing.T) {
		tk := reconstructedTicket(t, 5, vo.StatusNew, "")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := newPatchUseCase(repo)
		_, err := uc.Execute(ctx, PatchTicketCommand{
			TicketID: 5,
			Status:   strPtr("closed"),
			Actor:    "admin@example.com",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown ticket yields not found", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, ticket.ErrNotFound
			},
		}

		uc := newPatchUseCase(repo)
		_, err := uc.Execute(ctx, PatchTicketCommand{
			TicketID: 999,
			Title:    strPtr("whatever"),
			Actor:    "admin@example.com",
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("update failure propagates without activity append", func(t *testing.T) {
		tk := reconstructedTicket(t, 5, vo.StatusOpen, "")
		appendCalled := false

		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return assert.AnError
			},
			AppendActivitiesFunc: func(ctx context.Context, ticketID uint, entries []*ticket.ActivityEntry) error {
				appendCalled = true
				return nil
			},
		}

		uc := newPatchUseCase(repo)
		_, err := uc.Execute(ctx, PatchTicketCommand{
			TicketID: 5,
			Priority: strPtr("high"),
			Actor:    "admin@example.com",
		})

		require.Error(t, err)
		assert.False(t, appendCalled)
	})
}

package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func newChangeStatusUseCase(repo *mockTicketRepository, notifier Notifier) *ChangeStatusUseCase {
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
	return NewChangeStatusUseCase(repo, orgRepo, platformRepo, &mockTransactionManager{}, notifier, &mockLogger{})
}

func TestChangeStatusUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("valid transition records activity", func(t *testing.T) {
		tk := reconstructedTicket(t, 7, vo.StatusNew, "")
		var appended []*ticket.ActivityEntry

		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			AppendActivitiesFunc: func(ctx context.Context, ticketID uint, entries []*ticket.ActivityEntry) error {
				appended = entries
				return nil
			},
		}

		uc := newChangeStatusUseCase(repo, nil)
		result, err := uc.Execute(ctx, ChangeStatusCommand{TicketID: 7, Status: "open", Actor: "admin@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "open", result.Status)
		require.Len(t, appended, 1)
		assert.Equal(t, "new", appended[0].FromValue())
		assert.Equal(t, "open", appended[0].ToValue())
	})

	t.Run("resolve with remarks commits both", func(t *testing.T) {
		tk := reconstructedTicket(t, 7, vo.StatusInProgress, "")
		var updated *ticket.Ticket

		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}

		uc := newChangeStatusUseCase(repo, nil)
		result, err := uc.Execute(ctx, ChangeStatusCommand{
			TicketID: 7,
			Status:   "resolved",
			Remarks:  "reindexed the search cluster",
			Actor:    "admin@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "resolved", result.Status)
		assert.Equal(t, "reindexed the search cluster", result.ResolvedRemarks)

		require.NotNil(t, updated)
		assert.Equal(t, vo.StatusResolved, updated.Status())
		assert.Equal(t, "reindexed the search cluster", updated.ResolvedRemarks())
	})

	t.Run("resolve without remarks rejected", func(t *testing.T) {
		tk := reconstructedTicket(t, 7, vo.StatusInProgress, "")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := newChangeStatusUseCase(repo, nil)
		_, err := uc.Execute(ctx, ChangeStatusCommand{TicketID: 7, Status: "resolved", Actor: "admin@example.com"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("resolve with pre-set remarks succeeds without new remarks", func(t *testing.T) {
		tk := reconstructedTicket(t, 7, vo.StatusInProgress, "remarks drafted earlier")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := newChangeStatusUseCase(repo, nil)
		result, err := uc.Execute(ctx, ChangeStatusCommand{TicketID: 7, Status: "resolved", Actor: "admin@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "resolved", result.Status)
	})

	t.Run("closed is terminal", func(t *testing.T) {
		tk := reconstructedTicket(t, 7, vo.StatusClosed, "done")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := newChangeStatusUseCase(repo, nil)
		_, err := uc.Execute(ctx, ChangeStatusCommand{TicketID: 7, Status: "open", Actor: "admin@example.com"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("invalid status string rejected", func(t *testing.T) {
		uc := newChangeStatusUseCase(&mockTicketRepository{}, nil)
		_, err := uc.Execute(ctx, ChangeStatusCommand{TicketID: 7, Status: "archived", Actor: "admin@example.com"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("resolved notification fires", func(t *testing.T) {
		tk := reconstructedTicket(t, 7, vo.StatusInProgress, "")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		var wg sync.WaitGroup
		wg.Add(1)
		var notified *ticket.Ticket
		notifier := &mockNotifier{
			TicketResolvedFunc: func(ctx context.Context, t *ticket.Ticket) error {
				notified = t
				wg.Done()
				return nil
			},
		}

		uc := newChangeStatusUseCase(repo, notifier)
		_, err := uc.Execute(ctx, ChangeStatusCommand{
			TicketID: 7,
			Status:   "resolved",
			Remarks:  "fixed",
			Actor:    "admin@example.com",
		})
		require.NoError(t, err)

		done := make(chan struct{})
		go func() { wg.Wait(); close(done) }()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("resolved notification was never sent")
		}
		assert.Equal(t, uint(7), notified.ID())
	})
}

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

func TestGetTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns denormalized ticket", func(t *testing.T) {
		tk := reconstructedTicket(t, 3, vo.StatusOpen, "")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				assert.Equal(t, uint(3), id)
				return tk, nil
			},
		}
		orgRepo := &mockOrganizationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*reference.Organization, error) {
				return testOrganization(t, 1, "Acme Corp"), nil
			},
		}
		platformRepo := &mockPlatformRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*reference.Platform, error) {
				return testPlatform(t, 2, "web"), nil
			},
		}

		uc := NewGetTicketUseCase(repo, orgRepo, platformRepo, &mockLogger{})
		result, err := uc.Execute(ctx, GetTicketQuery{TicketID: 3})

		require.NoError(t, err)
		assert.Equal(t, uint(3), result.ID)
		assert.Equal(t, "TKT-000003", result.Serial)
		assert.Equal(t, "Acme Corp", result.Organization)
		assert.Equal(t, "web", result.Platform)
		assert.Empty(t, result.Activities)
	})

	t.Run("missing references render as empty names", func(t *testing.T) {
		tk := reconstructedTicket(t, 3, vo.StatusOpen, "")
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		orgRepo := &mockOrganizationRepository{}
		platformRepo := &mockPlatformRepository{}

		uc := NewGetTicketUseCase(repo, orgRepo, platformRepo, &mockLogger{})
		result, err := uc.Execute(ctx, GetTicketQuery{TicketID: 3})

		require.NoError(t, err)
		assert.Empty(t, result.Organization)
		assert.Empty(t, result.Platform)
	})

	t.Run("includes activities on request", func(t *testing.T) {
		tk := reconstructedTicket(t, 3, vo.StatusOpen, "")
		entry, err := ticket.ReconstructActivityEntry(1, 3, "admin@example.com", ticket.ActionTicketCreated, "", "new", "", tk.CreatedAt())
		require.NoError(t, err)

		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			GetActivitiesFunc: func(ctx context.Context, ticketID uint) ([]*ticket.ActivityEntry, error) {
				return []*ticket.ActivityEntry{entry}, nil
			},
		}

		uc := NewGetTicketUseCase(repo, &mockOrganizationRepository{}, &mockPlatformRepository{}, &mockLogger{})
		result, err := uc.Execute(ctx, GetTicketQuery{TicketID: 3, IncludeActivities: true})

		require.NoError(t, err)
		require.Len(t, result.Activities, 1)
		assert.Equal(t, ticket.ActionTicketCreated, result.Activities[0].Action)
	})

	t.Run("unknown ticket yields not found", func(t *testing.T) {
		uc := NewGetTicketUseCase(&mockTicketRepository{}, &mockOrganizationRepository{}, &mockPlatformRepository{}, &mockLogger{})
		_, err := uc.Execute(ctx, GetTicketQuery{TicketID: 404})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("zero id rejected", func(t *testing.T) {
		uc := NewGetTicketUseCase(&mockTicketRepository{}, &mockOrganizationRepository{}, &mockPlatformRepository{}, &mockLogger{})
		_, err := uc.Execute(ctx, GetTicketQuery{})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

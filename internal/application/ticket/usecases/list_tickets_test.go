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

func newListUseCase(t *testing.T, repo *mockTicketRepository) *ListTicketsUseCase {
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
	return NewListTicketsUseCase(repo, orgRepo, platformRepo, &mockLogger{})
}

func TestListTicketsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("passes normalized pagination and filters", func(t *testing.T) {
		var gotFilter ticket.TicketFilter
		repo := &mockTicketRepository{
			ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
				gotFilter = filter
				return []*ticket.Ticket{reconstructedTicket(t, 1, vo.StatusOpen, "")}, 1, nil
			},
		}

		uc := newListUseCase(t, repo)
		result, err := uc.Execute(ctx, ListTicketsQuery{Status: "open", Search: "export", Page: 2, PageSize: 10})

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, vo.StatusOpen, *gotFilter.Status)
		assert.Equal(t, "export", gotFilter.Search)
		assert.Equal(t, 2, gotFilter.Page)
		assert.Equal(t, 10, gotFilter.PageSize)

		require.Len(t, result.Tickets, 1)
		assert.Equal(t, "Acme Corp", result.Tickets[0].Organization)
		assert.Equal(t, "web", result.Tickets[0].Platform)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("defaults out-of-range pagination", func(t *testing.T) {
		var gotFilter ticket.TicketFilter
		repo := &mockTicketRepository{
			ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
				gotFilter = filter
				return nil, 0, nil
			},
		}

		uc := newListUseCase(t, repo)
		result, err := uc.Execute(ctx, ListTicketsQuery{Page: -1, PageSize: 5000})

		require.NoError(t, err)
		assert.Equal(t, 1, gotFilter.Page)
		assert.Equal(t, 100, gotFilter.PageSize, "page size is capped")
		assert.Empty(t, result.Tickets)
		assert.Nil(t, gotFilter.Status)
	})

	t.Run("invalid status filter rejected", func(t *testing.T) {
		uc := newListUseCase(t, &mockTicketRepository{})
		_, err := uc.Execute(ctx, ListTicketsQuery{Status: "archived"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/services/markdown"
)

func TestAddCommentUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	md := markdown.NewService()

	t.Run("saves comment and renders sanitized html", func(t *testing.T) {
		tk := reconstructedTicket(t, 4, vo.StatusOpen, "")
		var saved *ticket.Comment

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				saved = c
				return c.SetID(1)
			},
		}

		uc := NewAddCommentUseCase(ticketRepo, commentRepo, md, &mockLogger{})
		result, err := uc.Execute(ctx, AddCommentCommand{
			TicketID: 4,
			Author:   "admin@example.com",
			Content:  "Fixed in **build 42** <script>alert(1)</script>",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, uint(4), saved.TicketID())
		assert.Contains(t, result.ContentHTML, "<strong>build 42</strong>")
		assert.NotContains(t, result.ContentHTML, "<script>")
	})

	t.Run("unknown ticket yields not found", func(t *testing.T) {
		uc := NewAddCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, md, &mockLogger{})
		_, err := uc.Execute(ctx, AddCommentCommand{TicketID: 99, Author: "admin@example.com", Content: "hello"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("empty content rejected", func(t *testing.T) {
		tk := reconstructedTicket(t, 4, vo.StatusOpen, "")
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, md, &mockLogger{})
		_, err := uc.Execute(ctx, AddCommentCommand{TicketID: 4, Author: "admin@example.com"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListCommentsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	md := markdown.NewService()

	t.Run("returns comments oldest first as stored", func(t *testing.T) {
		tk := reconstructedTicket(t, 4, vo.StatusOpen, "")
		first, err := ticket.ReconstructComment(1, 4, "admin@example.com", "first", tk.CreatedAt(), tk.CreatedAt())
		require.NoError(t, err)
		second, err := ticket.ReconstructComment(2, 4, "admin@example.com", "second", tk.CreatedAt(), tk.CreatedAt())
		require.NoError(t, err)

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}
		commentRepo := &mockCommentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
				return []*ticket.Comment{first, second}, nil
			},
		}

		uc := NewListCommentsUseCase(ticketRepo, commentRepo, md, &mockLogger{})
		results, err := uc.Execute(ctx, ListCommentsQuery{TicketID: 4})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, uint(1), results[0].ID)
		assert.Equal(t, uint(2), results[1].ID)
	})

	t.Run("unknown ticket yields not found", func(t *testing.T) {
		uc := NewListCommentsUseCase(&mockTicketRepository{}, &mockCommentRepository{}, md, &mockLogger{})
		_, err := uc.Execute(ctx, ListCommentsQuery{TicketID: 99})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

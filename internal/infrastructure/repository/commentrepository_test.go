package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
)

func TestCommentRepository(t *testing.T) {
	gormDB := setupTestDB(t)
	ticketRepo := NewTicketRepository(gormDB)
	repo := NewCommentRepository(gormDB)
	ctx := context.Background()

	tk := newTestTicket(t, "Commented ticket", "TKT-CMT-001")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	t.Run("save assigns an id", func(t *testing.T) {
		comment, err := ticket.NewComment(tk.ID(), "Alice Admin", "first response")
		require.NoError(t, err)

		err = repo.Save(ctx, comment)
		assert.NoError(t, err)
		assert.NotZero(t, comment.ID())
	})

	t.Run("comments come back oldest first", func(t *testing.T) {
		second, err := ticket.NewComment(tk.ID(), "Bob Agent", "second response")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, second))

		third, err := ticket.NewComment(tk.ID(), "Alice Admin", "third response")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, third))

		comments, err := repo.GetByTicketID(ctx, tk.ID())
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "first response", comments[0].Content())
		assert.Equal(t, "second response", comments[1].Content())
		assert.Equal(t, "third response", comments[2].Content())
	})

	t.Run("no comments is an empty slice", func(t *testing.T) {
		other := newTestTicket(t, "Quiet ticket", "TKT-CMT-002")
		require.NoError(t, ticketRepo.Save(ctx, other))

		comments, err := repo.GetByTicketID(ctx, other.ID())
		assert.NoError(t, err)
		assert.Len(t, comments, 0)
	})

	t.Run("delete removes the comment", func(t *testing.T) {
		comment, err := ticket.NewComment(tk.ID(), "Alice Admin", "to be removed")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, comment))

		assert.NoError(t, repo.Delete(ctx, comment.ID()))
		assert.ErrorIs(t, repo.Delete(ctx, comment.ID()), ticket.ErrNotFound)
	})
}

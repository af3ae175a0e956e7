package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/admin"
	"helpdesk/internal/shared/authorization"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

func TestAdminRepository(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewAdminRepository(gormDB)
	ctx := context.Background()

	t.Run("save and load by email", func(t *testing.T) {
		a, err := admin.NewAdmin("Alice Admin", "alice@helpdesk.local", "correct-horse", authorization.RoleAdmin, plainHasher{})
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, a))
		assert.NotZero(t, a.ID())

		found, err := repo.GetByEmail(ctx, "alice@helpdesk.local")
		require.NoError(t, err)
		assert.Equal(t, a.ID(), found.ID())
		assert.Equal(t, authorization.RoleAdmin, found.Role())
		assert.NoError(t, found.VerifyPassword("correct-horse", plainHasher{}))
		assert.Error(t, found.VerifyPassword("wrong", plainHasher{}))
	})

	t.Run("load by id", func(t *testing.T) {
		a, err := admin.NewAdmin("Bob Agent", "bob@helpdesk.local", "hunter2hunter2", authorization.RoleAgent, plainHasher{})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a))

		found, err := repo.GetByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, "Bob Agent", found.Name())
		assert.Equal(t, authorization.RoleAgent, found.Role())
	})

	t.Run("unknown email yields ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@helpdesk.local")
		assert.ErrorIs(t, err, admin.ErrNotFound)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		a1, err := admin.NewAdmin("First", "dup@helpdesk.local", "password123", authorization.RoleAdmin, plainHasher{})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a1))

		a2, err := admin.NewAdmin("Second", "dup@helpdesk.local", "password123", authorization.RoleAdmin, plainHasher{})
		require.NoError(t, err)
		assert.Error(t, repo.Save(ctx, a2))
	})
}

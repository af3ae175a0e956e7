package admin

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no admin matches the lookup.
var ErrNotFound = errors.New("admin not found")

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id uint) (*Admin, error)
	Save(ctx context.Context, a *Admin) error
}

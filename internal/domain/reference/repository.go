package reference

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a name or id does not resolve to a record.
var ErrNotFound = errors.New("reference not found")

type OrganizationRepository interface {
	GetByID(ctx context.Context, id uint) (*Organization, error)
	// GetByName is a case-sensitive exact match.
	GetByName(ctx context.Context, name string) (*Organization, error)
	List(ctx context.Context) ([]*Organization, error)
	// Upsert creates the record when the name is unknown, otherwise leaves it
	// untouched. Used by idempotent seeding.
	Upsert(ctx context.Context, org *Organization) error
}

type PlatformRepository interface {
	GetByID(ctx context.Context, id uint) (*Platform, error)
	GetByName(ctx context.Context, name string) (*Platform, error)
	List(ctx context.Context) ([]*Platform, error)
	Upsert(ctx context.Context, platform *Platform) error
}

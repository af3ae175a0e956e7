package usecases

import (
	"context"
	"strconv"

	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

// TransactionManager runs a function inside a storage transaction so that
// multi-row writes (ticket update plus its activity entries) commit atomically.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier sends ticket lifecycle notifications. Implementations must be safe
// for concurrent use; failures are logged and never fail the operation.
type Notifier interface {
	TicketCreated(ctx context.Context, t *ticket.Ticket) error
	TicketResolved(ctx context.Context, t *ticket.Ticket) error
}

// resolveOrganization resolves an organization reference given either as a
// numeric id or as an exact name. Unresolvable references map to an invalid
// reference error, never a not found.
func resolveOrganization(ctx context.Context, repo reference.OrganizationRepository, ref string) (*reference.Organization, error) {
	if len(ref) == 0 {
		return nil, errors.NewInvalidReferenceError("organization is required")
	}

	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		org, err := repo.GetByID(ctx, uint(id))
		if err == nil {
			return org, nil
		}
		if err != reference.ErrNotFound {
			return nil, err
		}
		// A purely numeric name is unusual but allowed; fall through to the
		// name lookup before giving up.
	}

	org, err := repo.GetByName(ctx, ref)
	if err == reference.ErrNotFound {
		return nil, errors.NewInvalidReferenceError("unknown organization", ref)
	}
	if err != nil {
		return nil, err
	}
	return org, nil
}

// resolvePlatform mirrors resolveOrganization for platforms.
func resolvePlatform(ctx context.Context, repo reference.PlatformRepository, ref string) (*reference.Platform, error) {
	if len(ref) == 0 {
		return nil, errors.NewInvalidReferenceError("platform is required")
	}

	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		platform, err := repo.GetByID(ctx, uint(id))
		if err == nil {
			return platform, nil
		}
		if err != reference.ErrNotFound {
			return nil, err
		}
	}

	platform, err := repo.GetByName(ctx, ref)
	if err == reference.ErrNotFound {
		return nil, errors.NewInvalidReferenceError("unknown platform", ref)
	}
	if err != nil {
		return nil, err
	}
	return platform, nil
}

// referenceNames looks up the display names for a ticket's organization and
// platform. Missing records yield empty names rather than errors so stale
// tickets still render.
func referenceNames(
	ctx context.Context,
	orgRepo reference.OrganizationRepository,
	platformRepo reference.PlatformRepository,
	t *ticket.Ticket,
) (string, string) {
	orgName := ""
	if org, err := orgRepo.GetByID(ctx, t.OrganizationID()); err == nil {
		orgName = org.Name()
	}

	platformName := ""
	if platform, err := platformRepo.GetByID(ctx, t.PlatformID()); err == nil {
		platformName = platform.Name()
	}

	return orgName, platformName
}

package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/admin"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CurrentAdminResult struct {
	AdminID   uint
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// GetCurrentAdminUseCase resolves the authenticated admin from the session's
// admin id, backing the /auth/me endpoint.
type GetCurrentAdminUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewGetCurrentAdminUseCase(adminRepo admin.Repository, logger logger.Interface) *GetCurrentAdminUseCase {
	return &GetCurrentAdminUseCase{adminRepo: adminRepo, logger: logger}
}

func (uc *GetCurrentAdminUseCase) Execute(ctx context.Context, adminID uint) (*CurrentAdminResult, error) {
	if adminID == 0 {
		return nil, errors.NewUnauthorizedError("not authenticated")
	}

	a, err := uc.adminRepo.GetByID(ctx, adminID)
	if err == admin.ErrNotFound {
		// Token for a deleted account: treat as an expired session.
		return nil, errors.NewUnauthorizedError("not authenticated")
	}
	if err != nil {
		uc.logger.Errorw("failed to look up admin", "admin_id", adminID, "error", err)
		return nil, err
	}

	return &CurrentAdminResult{
		AdminID:   a.ID(),
		Name:      a.Name(),
		Email:     a.Email(),
		Role:      a.Role().String(),
		CreatedAt: a.CreatedAt(),
	}, nil
}

package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/admin"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// TokenGenerator issues signed session tokens for authenticated admins.
type TokenGenerator interface {
	GenerateToken(a *admin.Admin) (string, time.Time, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	AdminID   uint
	Name      string
	Email     string
	Role      string
}

type LoginUseCase struct {
	adminRepo admin.Repository
	hasher    admin.PasswordHasher
	tokens    TokenGenerator
	logger    logger.Interface
}

func NewLoginUseCase(
	adminRepo admin.Repository,
	hasher admin.PasswordHasher,
	tokens TokenGenerator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: adminRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	a, err := uc.adminRepo.GetByEmail(ctx, cmd.Email)
	if err == admin.ErrNotFound {
		// Same message as a wrong password so the response does not reveal
		// which accounts exist.
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if err != nil {
		uc.logger.Errorw("failed to look up admin", "email", cmd.Email, "error", err)
		return nil, err
	}

	if err := a.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresAt, err := uc.tokens.GenerateToken(a)
	if err != nil {
		uc.logger.Errorw("failed to generate token", "admin_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate session token")
	}

	uc.logger.Infow("admin logged in", "admin_id", a.ID(), "email", a.Email())

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		AdminID:   a.ID(),
		Name:      a.Name(),
		Email:     a.Email(),
		Role:      a.Role().String(),
	}, nil
}

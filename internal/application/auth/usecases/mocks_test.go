package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/admin"
	"helpdesk/internal/shared/logger"
)

type mockAdminRepository struct {
	GetByEmailFunc func(ctx context.Context, email string) (*admin.Admin, error)
	GetByIDFunc    func(ctx context.Context, id uint) (*admin.Admin, error)
	SaveFunc       func(ctx context.Context, a *admin.Admin) error
}

func (m *mockAdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, admin.ErrNotFound
}

func (m *mockAdminRepository) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, admin.ErrNotFound
}

func (m *mockAdminRepository) Save(ctx context.Context, a *admin.Admin) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

// mockHasher matches when the candidate equals the stored hash prefixed with
// "hashed:"; Hash never fails.
type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockTokenGenerator struct {
	GenerateTokenFunc func(a *admin.Admin) (string, time.Time, error)
}

func (m *mockTokenGenerator) GenerateToken(a *admin.Admin) (string, time.Time, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(a)
	}
	return "token", time.Now().Add(time.Hour), nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }

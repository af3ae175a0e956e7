package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/reference"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc           func(ctx context.Context, ticketID uint) error
	GetByIDFunc          func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetBySerialFunc      func(ctx context.Context, serial string) (*ticket.Ticket, error)
	ListFunc             func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	AppendActivitiesFunc func(ctx context.Context, ticketID uint, entries []*ticket.ActivityEntry) error
	GetActivitiesFunc    func(ctx context.Context, ticketID uint) ([]*ticket.ActivityEntry, error)
	GetStatsFunc         func(ctx context.Context, todayStart time.Time) (*ticket.Stats, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepository) GetBySerial(ctx context.Context, serial string) (*ticket.Ticket, error) {
	if m.GetBySerialFunc != nil {
		return m.GetBySerialFunc(ctx, serial)
	}
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) AppendActivities(ctx context.Context, ticketID uint, entries []*ticket.ActivityEntry) error {
	if m.AppendActivitiesFunc != nil {
		return m.AppendActivitiesFunc(ctx, ticketID, entries)
	}
	return nil
}

func (m *mockTicketRepository) GetActivities(ctx context.Context, ticketID uint) ([]*ticket.ActivityEntry, error) {
	if m.GetActivitiesFunc != nil {
		return m.GetActivitiesFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetStats(ctx context.Context, todayStart time.Time) (*ticket.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, todayStart)
	}
	return &ticket.Stats{}, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	DeleteFunc        func(ctx context.Context, commentID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

type mockOrganizationRepository struct {
	GetByIDFunc   func(ctx context.Context, id uint) (*reference.Organization, error)
	GetByNameFunc func(ctx context.Context, name string) (*reference.Organization, error)
	ListFunc      func(ctx context.Context) ([]*reference.Organization, error)
	UpsertFunc    func(ctx context.Context, org *reference.Organization) error
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id uint) (*reference.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, reference.ErrNotFound
}

func (m *mockOrganizationRepository) GetByName(ctx context.Context, name string) (*reference.Organization, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, reference.ErrNotFound
}

func (m *mockOrganizationRepository) List(ctx context.Context) ([]*reference.Organization, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) Upsert(ctx context.Context, org *reference.Organization) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, org)
	}
	return nil
}

type mockPlatformRepository struct {
	GetByIDFunc   func(ctx context.Context, id uint) (*reference.Platform, error)
	GetByNameFunc func(ctx context.Context, name string) (*reference.Platform, error)
	ListFunc      func(ctx context.Context) ([]*reference.Platform, error)
	UpsertFunc    func(ctx context.Context, platform *reference.Platform) error
}

func (m *mockPlatformRepository) GetByID(ctx context.Context, id uint) (*reference.Platform, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, reference.ErrNotFound
}

func (m *mockPlatformRepository) GetByName(ctx context.Context, name string) (*reference.Platform, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, reference.ErrNotFound
}

func (m *mockPlatformRepository) List(ctx context.Context) ([]*reference.Platform, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlatformRepository) Upsert(ctx context.Context, platform *reference.Platform) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, platform)
	}
	return nil
}

type mockSerialAllocator struct {
	NextFunc func(ctx context.Context, name string) (int64, error)
}

func (m *mockSerialAllocator) Next(ctx context.Context, name string) (int64, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, name)
	}
	return 1, nil
}

// mockTransactionManager runs the function directly; rollback behavior is
// exercised in the repository integration tests.
type mockTransactionManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockNotifier struct {
	TicketCreatedFunc  func(ctx context.Context, t *ticket.Ticket) error
	TicketResolvedFunc func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockNotifier) TicketCreated(ctx context.Context, t *ticket.Ticket) error {
	if m.TicketCreatedFunc != nil {
		return m.TicketCreatedFunc(ctx, t)
	}
	return nil
}

func (m *mockNotifier) TicketResolved(ctx context.Context, t *ticket.Ticket) error {
	if m.TicketResolvedFunc != nil {
		return m.TicketResolvedFunc(ctx, t)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }

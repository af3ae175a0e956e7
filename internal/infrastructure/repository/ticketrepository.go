package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "serial", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrNotFound
	}

	// Activities and comments are removed alongside; no FK cascades exist.
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.ActivityModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket activities: %w", err)
	}
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket comments: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetBySerial(ctx context.Context, serial string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("serial = ?", serial).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket by serial: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(filter.Search))+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Deterministic ordering: newest first, id as tiebreaker for tickets
	// created in the same millisecond.
	query = query.Order("created_at DESC").Order("id DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) AppendActivities(ctx context.Context, ticketID uint, entries []*ticket.ActivityEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	for _, entry := range entries {
		if err := entry.BindTicket(ticketID); err != nil {
			return err
		}
		model := r.mapper.ActivityToModel(entry)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to append activity: %w", err)
		}
		if err := entry.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *TicketRepository) GetActivities(ctx context.Context, ticketID uint) ([]*ticket.ActivityEntry, error) {
	var activityModels []models.ActivityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&activityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get ticket activities: %w", err)
	}

	entries := make([]*ticket.ActivityEntry, len(activityModels))
	for i := range activityModels {
		entry, err := r.mapper.ActivityToDomain(&activityModels[i])
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}

func (r *TicketRepository) GetStats(ctx context.Context, todayStart time.Time) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := &ticket.Stats{}

	type statusCount struct {
		Status string
		Count  int64
	}

	var counts []statusCount
	if err := tx.
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	for _, c := range counts {
		stats.Total += c.Count
		switch vo.TicketStatus(c.Status) {
		case vo.StatusResolved:
			stats.Resolved += c.Count
		case vo.StatusClosed:
			stats.Closed += c.Count
		default:
			// Everything not yet resolved or closed counts as open work.
			stats.Open += c.Count
		}
	}

	if err := tx.
		Model(&models.TicketModel{}).
		Where("created_at >= ?", todayStart.UnixMilli()).
		Count(&stats.Today).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's tickets: %w", err)
	}

	return stats, nil
}

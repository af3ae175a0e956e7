// Package services holds infrastructure-backed implementations of domain
// service interfaces.
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

// SerialAllocator implements ticket.SerialAllocator on a counters table. Each
// Next call runs its own transaction: the counter row is locked with SELECT
// FOR UPDATE, incremented, and committed, so concurrent callers serialize on
// the row and no value is handed out twice.
type SerialAllocator struct {
	db *gorm.DB
}

func NewSerialAllocator(db *gorm.DB) *SerialAllocator {
	return &SerialAllocator{db: db}
}

func (s *SerialAllocator) Next(ctx context.Context, name string) (int64, error) {
	value, err := s.allocate(ctx, name)
	if err != nil && errors.IsDuplicateError(err) {
		// Two callers raced to create the counter row. The loser's transaction
		// rolled back on the primary key; the row exists now, so one retry
		// goes through the locked-increment path.
		return s.allocate(ctx, name)
	}
	return value, err
}

func (s *SerialAllocator) allocate(ctx context.Context, name string) (int64, error) {
	var value int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter models.CounterModel

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&counter).Error

		if err == gorm.ErrRecordNotFound {
			// First allocation for this sequence creates the row.
			counter = models.CounterModel{Name: name, Value: 0}
			if err := tx.Create(&counter).Error; err != nil {
				return fmt.Errorf("failed to create counter %q: %w", name, err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to lock counter %q: %w", name, err)
		}

		counter.Value++
		if err := tx.
			Model(&models.CounterModel{}).
			Where("name = ?", name).
			Update("value", counter.Value).Error; err != nil {
			return fmt.Errorf("failed to increment counter %q: %w", name, err)
		}

		value = counter.Value
		return nil
	})
	if err != nil {
		return 0, err
	}

	return value, nil
}

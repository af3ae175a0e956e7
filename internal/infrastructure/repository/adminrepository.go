package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/admin"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/db"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var model models.AdminModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, admin.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return toAdminDomain(&model)
}

func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	var model models.AdminModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, admin.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return toAdminDomain(&model)
}

func (r *AdminRepository) Save(ctx context.Context, a *admin.Admin) error {
	model := &models.AdminModel{
		ID:           a.ID(),
		Name:         a.Name(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
		UpdatedAt:    a.UpdatedAt().UnixMilli(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save admin: %w", err)
	}

	if a.ID() == 0 {
		return a.SetID(model.ID)
	}
	return nil
}

func toAdminDomain(model *models.AdminModel) (*admin.Admin, error) {
	a, err := admin.ReconstructAdmin(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		authorization.ParseAdminRole(model.Role),
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct admin %d: %w", model.ID, err)
	}
	return a, nil
}

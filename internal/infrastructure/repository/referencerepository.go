package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpdesk/internal/domain/reference"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*reference.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, reference.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return reference.ReconstructOrganization(model.ID, model.Name, time.UnixMilli(model.CreatedAt).UTC())
}

func (r *OrganizationRepository) GetByName(ctx context.Context, name string) (*reference.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	// The name column uses a binary collation, so equality here is
	// case-sensitive on MySQL as well as SQLite.
	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, reference.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization by name: %w", err)
	}

	return reference.ReconstructOrganization(model.ID, model.Name, time.UnixMilli(model.CreatedAt).UTC())
}

func (r *OrganizationRepository) List(ctx context.Context) ([]*reference.Organization, error) {
	var organizationModels []models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&organizationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	orgs := make([]*reference.Organization, len(organizationModels))
	for i, model := range organizationModels {
		org, err := reference.ReconstructOrganization(model.ID, model.Name, time.UnixMilli(model.CreatedAt).UTC())
		if err != nil {
			return nil, err
		}
		orgs[i] = org
	}

	return orgs, nil
}

func (r *OrganizationRepository) Upsert(ctx context.Context, org *reference.Organization) error {
	model := &models.OrganizationModel{Name: org.Name()}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert organization: %w", err)
	}

	// DoNothing leaves model.ID zero when the row already existed.
	if model.ID == 0 {
		existing, err := r.GetByName(ctx, org.Name())
		if err != nil {
			return err
		}
		return org.SetID(existing.ID())
	}

	return org.SetID(model.ID)
}

type PlatformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

func (r *PlatformRepository) GetByID(ctx context.Context, id uint) (*reference.Platform, error) {
	var model models.PlatformModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, reference.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get platform: %w", err)
	}

	return reference.ReconstructPlatform(model.ID, model.Name, time.UnixMilli(model.CreatedAt).UTC())
}

func (r *PlatformRepository) GetByName(ctx context.Context, name string) (*reference.Platform, error) {
	var model models.PlatformModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, reference.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get platform by name: %w", err)
	}

	return reference.ReconstructPlatform(model.ID, model.Name, time.UnixMilli(model.CreatedAt).UTC())
}

func (r *PlatformRepository) List(ctx context.Context) ([]*reference.Platform, error) {
	var platformModels []models.PlatformModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&platformModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}

	platforms := make([]*reference.Platform, len(platformModels))
	for i, model := range platformModels {
		platform, err := reference.ReconstructPlatform(model.ID, model.Name, time.UnixMilli(model.CreatedAt).UTC())
		if err != nil {
			return nil, err
		}
		platforms[i] = platform
	}

	return platforms, nil
}

func (r *PlatformRepository) Upsert(ctx context.Context, platform *reference.Platform) error {
	model := &models.PlatformModel{Name: platform.Name()}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert platform: %w", err)
	}

	if model.ID == 0 {
		existing, err := r.GetByName(ctx, platform.Name())
		if err != nil {
			return err
		}
		return platform.SetID(existing.ID())
	}

	return platform.SetID(model.ID)
}

package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// AutoMigrateModels lists every model the schema is built from.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AdminModel{},
		&models.OrganizationModel{},
		&models.PlatformModel{},
		&models.TicketModel{},
		&models.ActivityModel{},
		&models.CommentModel{},
		&models.CounterModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema straight from the model structs.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm-automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

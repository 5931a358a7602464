package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smartincident/internal/domain/notification"
	"smartincident/internal/infrastructure/persistence/mappers"
	"smartincident/internal/infrastructure/persistence/models"
	"smartincident/internal/shared/db"
)

// NotificationConfigRepository stores the single mail configuration row.
type NotificationConfigRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationConfigMapper
}

func NewNotificationConfigRepository(database *gorm.DB) *NotificationConfigRepository {
	return &NotificationConfigRepository{
		db:     database,
		mapper: mappers.NewNotificationConfigMapper(),
	}
}

func (r *NotificationConfigRepository) Get(ctx context.Context) (*notification.Config, error) {
	var model models.NotificationConfigModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load notification config: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationConfigRepository) Save(ctx context.Context, cfg *notification.Config) error {
	model := r.mapper.ToModel(cfg)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification config: %w", err)
	}

	return cfg.SetID(model.ID)
}

func (r *NotificationConfigRepository) Update(ctx context.Context, cfg *notification.Config) error {
	model := r.mapper.ToModel(cfg)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationConfigModel{}).
		Where("id = ?", model.ID).
		Select("smtp_host", "smtp_port", "smtp_user", "smtp_pass",
			"from_name", "from_email", "enabled", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update notification config: %w", result.Error)
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smartincident/internal/domain/tickettype"
	"smartincident/internal/infrastructure/persistence/mappers"
	"smartincident/internal/infrastructure/persistence/models"
	"smartincident/internal/shared/db"
)

type TicketTypeRepository struct {
	db     *gorm.DB
	mapper mappers.TicketTypeMapper
}

func NewTicketTypeRepository(database *gorm.DB) *TicketTypeRepository {
	return &TicketTypeRepository{
		db:     database,
		mapper: mappers.NewTicketTypeMapper(),
	}
}

func (r *TicketTypeRepository) Save(ctx context.Context, tt *tickettype.TicketType) error {
	model := r.mapper.ToModel(tt)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket type: %w", err)
	}

	return tt.SetID(model.ID)
}

func (r *TicketTypeRepository) Update(ctx context.Context, tt *tickettype.TicketType) error {
	model := r.mapper.ToModel(tt)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketTypeModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "sla_response_mins",
			"sla_resolution_mins", "global", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket type: %w", result.Error)
	}

	return nil
}

func (r *TicketTypeRepository) FindByID(ctx context.Context, id uint) (*tickettype.TicketType, error) {
	var model models.TicketTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket type: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketTypeRepository) FindByName(ctx context.Context, name string) (*tickettype.TicketType, error) {
	var model models.TicketTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket type by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketTypeRepository) List(ctx context.Context) ([]*tickettype.TicketType, error) {
	var modelList []models.TicketTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}

	types := make([]*tickettype.TicketType, 0, len(modelList))
	for i := range modelList {
		tt, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		types = append(types, tt)
	}

	return types, nil
}

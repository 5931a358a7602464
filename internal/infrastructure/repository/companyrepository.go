package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smartincident/internal/domain/company"
	"smartincident/internal/infrastructure/persistence/mappers"
	"smartincident/internal/infrastructure/persistence/models"
	"smartincident/internal/shared/db"
)

type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCompanyRepository(database *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		db:     database,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *CompanyRepository) Save(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Select("name", "status", "address", "contact_email", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}

	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) FindByIDs(ctx context.Context, ids []uint) ([]*company.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.CompanyModel
	if err := tx.Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find companies by ids: %w", err)
	}

	companies := make([]*company.Company, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.CompanyModel
	if err := tx.Model(&models.CompanyModel{}).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]*company.Company, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, nil
}

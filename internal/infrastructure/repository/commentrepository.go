package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smartincident/internal/domain/incident"
	"smartincident/internal/infrastructure/persistence/mappers"
	"smartincident/internal/infrastructure/persistence/models"
	"smartincident/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.IncidentMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewIncidentMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *incident.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (*incident.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByIncident(ctx context.Context, incidentID uint) ([]*incident.Comment, error) {
	var modelList []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("incident_id = ?", incidentID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*incident.Comment, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CommentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}

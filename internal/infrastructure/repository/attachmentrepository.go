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

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.IncidentMapper
}

func NewAttachmentRepository(database *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewIncidentMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, att *incident.Attachment) error {
	model := r.mapper.AttachmentToModel(att)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return att.SetID(model.ID)
}

func (r *AttachmentRepository) ListByIncident(ctx context.Context, incidentID uint) ([]*incident.Attachment, error) {
	return r.list(ctx, "incident_id = ?", incidentID)
}

func (r *AttachmentRepository) ListByComment(ctx context.Context, commentID uint) ([]*incident.Attachment, error) {
	return r.list(ctx, "comment_id = ?", commentID)
}

func (r *AttachmentRepository) list(ctx context.Context, cond string, arg uint) ([]*incident.Attachment, error) {
	var modelList []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where(cond, arg).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*incident.Attachment, 0, len(modelList))
	for i := range modelList {
		a, err := r.mapper.AttachmentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}

	return attachments, nil
}

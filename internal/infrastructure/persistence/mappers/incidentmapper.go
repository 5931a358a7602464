package mappers

import (
	"time"

	"smartincident/internal/domain/incident"
	"smartincident/internal/infrastructure/persistence/models"
)

// IncidentMapper handles the conversion between incident domain entities and
// persistence models, including comments and attachments.
type IncidentMapper interface {
	ToModel(i *incident.Incident) *models.IncidentModel
	ToDomain(model *models.IncidentModel) (*incident.Incident, error)

	CommentToModel(c *incident.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*incident.Comment, error)

	AttachmentToModel(a *incident.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*incident.Attachment, error)
}

type IncidentMapperImpl struct{}

func NewIncidentMapper() IncidentMapper {
	return &IncidentMapperImpl{}
}

func (m *IncidentMapperImpl) ToModel(i *incident.Incident) *models.IncidentModel {
	return &models.IncidentModel{
		ID:          i.ID(),
		TicketCode:  i.TicketCode(),
		Title:       i.Title(),
		Description: i.Description(),
		Status:      i.Status().String(),
		Priority:    i.Priority().String(),
		ReporterID:  i.ReporterID(),
		AssigneeID:  i.AssigneeID(),
		CompanyID:   i.CompanyID(),
		TypeID:      i.TypeID(),
		CreatedAt:   i.CreatedAt().UnixMilli(),
		UpdatedAt:   i.UpdatedAt().UnixMilli(),
	}
}

func (m *IncidentMapperImpl) ToDomain(model *models.IncidentModel) (*incident.Incident, error) {
	return incident.ReconstructIncident(
		model.ID,
		model.TicketCode,
		model.Title,
		model.Description,
		incident.Status(model.Status),
		incident.Priority(model.Priority),
		model.ReporterID,
		model.AssigneeID,
		model.CompanyID,
		model.TypeID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *IncidentMapperImpl) CommentToModel(c *incident.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		IncidentID: c.IncidentID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func (m *IncidentMapperImpl) CommentToDomain(model *models.CommentModel) (*incident.Comment, error) {
	return incident.ReconstructComment(
		model.ID,
		model.IncidentID,
		model.AuthorID,
		model.Content,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *IncidentMapperImpl) AttachmentToModel(a *incident.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:         a.ID(),
		IncidentID: a.IncidentID(),
		CommentID:  a.CommentID(),
		FileName:   a.FileName(),
		FilePath:   a.FilePath(),
		MimeType:   a.MimeType(),
		SizeBytes:  a.SizeBytes(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
	}
}

func (m *IncidentMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*incident.Attachment, error) {
	return incident.ReconstructAttachment(
		model.ID,
		model.IncidentID,
		model.CommentID,
		model.FileName,
		model.FilePath,
		model.MimeType,
		model.SizeBytes,
		time.UnixMilli(model.CreatedAt),
	)
}

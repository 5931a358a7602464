package mappers

import (
	"time"

	"smartincident/internal/domain/notification"
	"smartincident/internal/infrastructure/persistence/models"
)

type NotificationConfigMapper interface {
	ToModel(c *notification.Config) *models.NotificationConfigModel
	ToDomain(model *models.NotificationConfigModel) (*notification.Config, error)
}

type NotificationConfigMapperImpl struct{}

func NewNotificationConfigMapper() NotificationConfigMapper {
	return &NotificationConfigMapperImpl{}
}

func (m *NotificationConfigMapperImpl) ToModel(c *notification.Config) *models.NotificationConfigModel {
	return &models.NotificationConfigModel{
		ID:        c.ID(),
		SMTPHost:  c.SMTPHost(),
		SMTPPort:  c.SMTPPort(),
		SMTPUser:  c.SMTPUser(),
		SMTPPass:  c.SMTPPass(),
		FromName:  c.FromName(),
		FromEmail: c.FromEmail(),
		Enabled:   c.Enabled(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *NotificationConfigMapperImpl) ToDomain(model *models.NotificationConfigModel) (*notification.Config, error) {
	return notification.ReconstructConfig(
		model.ID,
		model.SMTPHost,
		model.SMTPPort,
		model.SMTPUser,
		model.SMTPPass,
		model.FromName,
		model.FromEmail,
		model.Enabled,
		time.UnixMilli(model.UpdatedAt),
	)
}

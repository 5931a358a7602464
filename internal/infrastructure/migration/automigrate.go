package migration

import (
	"smartincident/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in AutoMigrate order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CompanyModel{},
		&models.UserModel{},
		&models.TicketTypeModel{},
		&models.IncidentModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.NotificationConfigModel{},
	}
}

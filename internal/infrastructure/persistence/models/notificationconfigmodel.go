package models

type NotificationConfigModel struct {
	ID        uint   `gorm:"primaryKey"`
	SMTPHost  string `gorm:"column:smtp_host;size:255;not null"`
	SMTPPort  int    `gorm:"column:smtp_port;not null"`
	SMTPUser  string `gorm:"column:smtp_user;size:255"`
	SMTPPass  string `gorm:"column:smtp_pass;size:255"`
	FromName  string `gorm:"size:100"`
	FromEmail string `gorm:"size:255;not null"`
	Enabled   bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (NotificationConfigModel) TableName() string {
	return "notification_configs"
}

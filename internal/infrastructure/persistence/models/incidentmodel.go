package models

type IncidentModel struct {
	ID          uint    `gorm:"primaryKey"`
	TicketCode  *string `gorm:"uniqueIndex;size:50"`
	Title       string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text"`
	Status      string  `gorm:"size:20;not null;index"`
	Priority    string  `gorm:"size:20;not null;index"`
	ReporterID  uint    `gorm:"not null;index"`
	AssigneeID  *uint   `gorm:"index"`
	CompanyID   uint    `gorm:"not null;index"`
	TypeID      uint    `gorm:"not null;index"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IncidentModel) TableName() string {
	return "incidents"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	IncidentID uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "comments"
}

type AttachmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	IncidentID *uint  `gorm:"index"`
	CommentID  *uint  `gorm:"index"`
	FileName   string `gorm:"size:255;not null"`
	FilePath   string `gorm:"size:500;not null"`
	MimeType   string `gorm:"size:100"`
	SizeBytes  int64  `gorm:"not null;default:0"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}

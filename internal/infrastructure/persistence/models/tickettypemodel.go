package models

type TicketTypeModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"uniqueIndex;size:100;not null"`
	Description       string `gorm:"size:500"`
	SLAResponseMins   int    `gorm:"column:sla_response_mins;not null;default:0"`
	SLAResolutionMins int    `gorm:"column:sla_resolution_mins;not null;default:0"`
	Global            bool   `gorm:"not null;default:false"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketTypeModel) TableName() string {
	return "ticket_types"
}

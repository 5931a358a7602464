package models

type CompanyModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	Address      string `gorm:"size:500"`
	ContactEmail string `gorm:"size:255"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CompanyModel) TableName() string {
	return "companies"
}

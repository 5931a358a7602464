package models

type UserModel struct {
	ID               uint    `gorm:"primaryKey"`
	Name             string  `gorm:"size:100;not null"`
	Email            string  `gorm:"uniqueIndex;size:255;not null"`
	Role             string  `gorm:"size:30;not null;index"`
	Status           string  `gorm:"size:20;not null;index"`
	PasswordHash     *string `gorm:"size:255"`
	ResetToken       *string `gorm:"size:64;index"`
	ResetTokenExpiry *int64
	CompanyID        *uint `gorm:"index"`
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}

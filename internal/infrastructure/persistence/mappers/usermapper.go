package mappers

import (
	"time"

	"smartincident/internal/domain/user"
	"smartincident/internal/infrastructure/persistence/models"
	"smartincident/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and
// persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		Status:       u.Status().String(),
		PasswordHash: u.PasswordHash(),
		ResetToken:   u.ResetToken(),
		CompanyID:    u.CompanyID(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}

	if u.ResetTokenExpiry() != nil {
		expiry := u.ResetTokenExpiry().UnixMilli()
		model.ResetTokenExpiry = &expiry
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	var resetTokenExpiry *time.Time
	if model.ResetTokenExpiry != nil {
		expiry := time.UnixMilli(*model.ResetTokenExpiry)
		resetTokenExpiry = &expiry
	}

	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		authorization.Role(model.Role),
		user.Status(model.Status),
		model.PasswordHash,
		model.ResetToken,
		resetTokenExpiry,
		model.CompanyID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

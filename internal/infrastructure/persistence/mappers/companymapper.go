package mappers

import (
	"time"

	"smartincident/internal/domain/company"
	"smartincident/internal/infrastructure/persistence/models"
)

// CompanyMapper handles the conversion between Company domain entities and
// persistence models.
type CompanyMapper interface {
	ToModel(c *company.Company) *models.CompanyModel
	ToDomain(model *models.CompanyModel) (*company.Company, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToModel(c *company.Company) *models.CompanyModel {
	return &models.CompanyModel{
		ID:           c.ID(),
		Name:         c.Name(),
		Status:       c.Status().String(),
		Address:      c.Address(),
		ContactEmail: c.ContactEmail(),
		CreatedAt:    c.CreatedAt().UnixMilli(),
		UpdatedAt:    c.UpdatedAt().UnixMilli(),
	}
}

func (m *CompanyMapperImpl) ToDomain(model *models.CompanyModel) (*company.Company, error) {
	return company.ReconstructCompany(
		model.ID,
		model.Name,
		company.Status(model.Status),
		model.Address,
		model.ContactEmail,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

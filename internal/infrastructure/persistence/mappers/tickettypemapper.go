package mappers

import (
	"time"

	"smartincident/internal/domain/tickettype"
	"smartincident/internal/infrastructure/persistence/models"
)

type TicketTypeMapper interface {
	ToModel(t *tickettype.TicketType) *models.TicketTypeModel
	ToDomain(model *models.TicketTypeModel) (*tickettype.TicketType, error)
}

type TicketTypeMapperImpl struct{}

func NewTicketTypeMapper() TicketTypeMapper {
	return &TicketTypeMapperImpl{}
}

func (m *TicketTypeMapperImpl) ToModel(t *tickettype.TicketType) *models.TicketTypeModel {
	return &models.TicketTypeModel{
		ID:                t.ID(),
		Name:              t.Name(),
		Description:       t.Description(),
		SLAResponseMins:   t.SLAResponseMins(),
		SLAResolutionMins: t.SLAResolutionMins(),
		Global:            t.Global(),
		CreatedAt:         t.CreatedAt().UnixMilli(),
		UpdatedAt:         t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketTypeMapperImpl) ToDomain(model *models.TicketTypeModel) (*tickettype.TicketType, error) {
	return tickettype.ReconstructTicketType(
		model.ID,
		model.Name,
		model.Description,
		model.SLAResponseMins,
		model.SLAResolutionMins,
		model.Global,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

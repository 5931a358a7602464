package usecases

import (
	"context"
	"time"

	"smartincident/internal/domain/tickettype"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type CreateTicketTypeCommand struct {
	Actor             authorization.Actor
	Name              string
	Description       string
	SLAResponseMins   int
	SLAResolutionMins int
	Global            bool
}

type TicketTypeResult struct {
	TypeID            uint
	Name              string
	Description       string
	SLAResponseMins   int
	SLAResolutionMins int
	Global            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CreateTicketTypeUseCase struct {
	typeRepo tickettype.Repository
	logger   logger.Interface
}

func NewCreateTicketTypeUseCase(typeRepo tickettype.Repository, logger logger.Interface) *CreateTicketTypeUseCase {
	return &CreateTicketTypeUseCase{typeRepo: typeRepo, logger: logger}
}

func (uc *CreateTicketTypeUseCase) Execute(ctx context.Context, cmd CreateTicketTypeCommand) (*TicketTypeResult, error) {
	decision := authorization.Scope(cmd.Actor, authorization.OpCreate, authorization.ResourceTicketType)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	existing, err := uc.typeRepo.FindByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check ticket type name", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to create ticket type", err.Error())
	}
	if existing != nil {
		return nil, errors.NewConflictError("a ticket type with that name already exists")
	}

	tt, err := tickettype.NewTicketType(cmd.Name, cmd.Description,
		cmd.SLAResponseMins, cmd.SLAResolutionMins, cmd.Global)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.typeRepo.Save(ctx, tt); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a ticket type with that name already exists")
		}
		uc.logger.Errorw("failed to save ticket type", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to create ticket type", err.Error())
	}

	uc.logger.Infow("ticket type created", "type_id", tt.ID(), "name", tt.Name())
	return toTicketTypeResult(tt), nil
}

func toTicketTypeResult(tt *tickettype.TicketType) *TicketTypeResult {
	return &TicketTypeResult{
		TypeID:            tt.ID(),
		Name:              tt.Name(),
		Description:       tt.Description(),
		SLAResponseMins:   tt.SLAResponseMins(),
		SLAResolutionMins: tt.SLAResolutionMins(),
		Global:            tt.Global(),
		CreatedAt:         tt.CreatedAt(),
		UpdatedAt:         tt.UpdatedAt(),
	}
}

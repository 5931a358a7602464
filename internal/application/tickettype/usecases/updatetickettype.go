package usecases

import (
	"context"

	"smartincident/internal/domain/tickettype"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type UpdateTicketTypeCommand struct {
	Actor             authorization.Actor
	TypeID            uint
	Name              *string
	Description       *string
	SLAResponseMins   *int
	SLAResolutionMins *int
	Global            *bool
}

type UpdateTicketTypeUseCase struct {
	typeRepo tickettype.Repository
	logger   logger.Interface
}

func NewUpdateTicketTypeUseCase(typeRepo tickettype.Repository, logger logger.Interface) *UpdateTicketTypeUseCase {
	return &UpdateTicketTypeUseCase{typeRepo: typeRepo, logger: logger}
}

func (uc *UpdateTicketTypeUseCase) Execute(ctx context.Context, cmd UpdateTicketTypeCommand) (*TicketTypeResult, error) {
	decision := authorization.Scope(cmd.Actor, authorization.OpUpdate, authorization.ResourceTicketType)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	tt, err := uc.typeRepo.FindByID(ctx, cmd.TypeID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket type", "type_id", cmd.TypeID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket type", err.Error())
	}
	if tt == nil {
		return nil, errors.NewNotFoundError("ticket type not found")
	}

	if cmd.Name != nil && *cmd.Name != tt.Name() {
		existing, err := uc.typeRepo.FindByName(ctx, *cmd.Name)
		if err != nil {
			uc.logger.Errorw("failed to check ticket type name", "name", *cmd.Name, "error", err)
			return nil, errors.NewInternalError("failed to update ticket type", err.Error())
		}
		if existing != nil {
			return nil, errors.NewConflictError("a ticket type with that name already exists")
		}
		if err := tt.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		tt.ChangeDescription(*cmd.Description)
	}

	if cmd.SLAResponseMins != nil || cmd.SLAResolutionMins != nil {
		response := tt.SLAResponseMins()
		resolution := tt.SLAResolutionMins()
		if cmd.SLAResponseMins != nil {
			response = *cmd.SLAResponseMins
		}
		if cmd.SLAResolutionMins != nil {
			resolution = *cmd.SLAResolutionMins
		}
		if err := tt.ChangeSLA(response, resolution); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Global != nil {
		tt.SetGlobal(*cmd.Global)
	}

	if err := uc.typeRepo.Update(ctx, tt); err != nil {
		uc.logger.Errorw("failed to update ticket type", "type_id", tt.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update ticket type", err.Error())
	}

	uc.logger.Infow("ticket type updated", "type_id", tt.ID(), "name", tt.Name())
	return toTicketTypeResult(tt), nil
}

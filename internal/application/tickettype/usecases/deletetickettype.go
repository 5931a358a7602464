package usecases

import (
	"context"

	"smartincident/internal/domain/incident"
	"smartincident/internal/domain/tickettype"
	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type DeleteTicketTypeCommand struct {
	Actor  authorization.Actor
	TypeID uint
}

type DeleteTicketTypeUseCase struct {
	typeRepo     tickettype.Repository
	incidentRepo incident.Repository
	cascader     CascadeDeleter
	logger       logger.Interface
}

func NewDeleteTicketTypeUseCase(
	typeRepo tickettype.Repository,
	incidentRepo incident.Repository,
	cascader CascadeDeleter,
	logger logger.Interface,
) *DeleteTicketTypeUseCase {
	return &DeleteTicketTypeUseCase{
		typeRepo:     typeRepo,
		incidentRepo: incidentRepo,
		cascader:     cascader,
		logger:       logger,
	}
}

func (uc *DeleteTicketTypeUseCase) Execute(ctx context.Context, cmd DeleteTicketTypeCommand) error {
	decision := authorization.Scope(cmd.Actor, authorization.OpDelete, authorization.ResourceTicketType)
	if !decision.Allow {
		return errors.NewForbiddenError("insufficient permissions")
	}

	tt, err := uc.typeRepo.FindByID(ctx, cmd.TypeID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket type", "type_id", cmd.TypeID, "error", err)
		return errors.NewInternalError("failed to delete ticket type", err.Error())
	}
	if tt == nil {
		return errors.NewNotFoundError("ticket type not found")
	}

	affected, err := uc.incidentRepo.CountByTypeID(ctx, tt.ID())
	if err != nil {
		uc.logger.Errorw("failed to count incidents for ticket type", "type_id", tt.ID(), "error", err)
		return errors.NewInternalError("failed to delete ticket type", err.Error())
	}

	if err := uc.cascader.Delete(ctx, cascade.KindTicketType, tt.ID()); err != nil {
		uc.logger.Errorw("ticket type cascade deletion failed", "type_id", tt.ID(), "error", err)
		return err
	}

	uc.logger.Infow("ticket type deleted",
		"type_id", tt.ID(), "name", tt.Name(), "incidents_removed", affected)
	return nil
}

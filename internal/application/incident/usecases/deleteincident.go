package usecases

import (
	"context"

	"smartincident/internal/domain/incident"
	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type DeleteIncidentCommand struct {
	Actor      authorization.Actor
	IncidentID uint
}

type DeleteIncidentUseCase struct {
	incidentRepo incident.Repository
	cascader     CascadeDeleter
	logger       logger.Interface
}

func NewDeleteIncidentUseCase(
	incidentRepo incident.Repository,
	cascader CascadeDeleter,
	logger logger.Interface,
) *DeleteIncidentUseCase {
	return &DeleteIncidentUseCase{
		incidentRepo: incidentRepo,
		cascader:     cascader,
		logger:       logger,
	}
}

func (uc *DeleteIncidentUseCase) Execute(ctx context.Context, cmd DeleteIncidentCommand) error {
	decision := authorization.Scope(cmd.Actor, authorization.OpDelete, authorization.ResourceIncident)
	if !decision.Allow {
		return errors.NewForbiddenError("insufficient permissions")
	}

	inc, err := uc.incidentRepo.FindByID(ctx, cmd.IncidentID)
	if err != nil {
		uc.logger.Errorw("failed to load incident", "incident_id", cmd.IncidentID, "error", err)
		return errors.NewInternalError("failed to delete incident", err.Error())
	}
	if inc == nil {
		return errors.NewNotFoundError("incident not found")
	}

	if err := uc.cascader.Delete(ctx, cascade.KindIncident, inc.ID()); err != nil {
		uc.logger.Errorw("incident cascade deletion failed", "incident_id", inc.ID(), "error", err)
		return err
	}

	uc.logger.Infow("incident deleted", "incident_id", inc.ID())
	return nil
}

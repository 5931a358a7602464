package usecases

import (
	"context"

	"smartincident/internal/domain/incident"
	"smartincident/internal/domain/user"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type UpdateIncidentCommand struct {
	Actor      authorization.Actor
	IncidentID uint

	Title       *string
	Description *string
	Status      *string
	Priority    *string

	// Assignment is reserved for staff. Mutually exclusive fields;
	// Unassign wins when both are set.
	AssigneeID *uint
	Unassign   bool
}

type UpdateIncidentUseCase struct {
	incidentRepo incident.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewUpdateIncidentUseCase(
	incidentRepo incident.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateIncidentUseCase {
	return &UpdateIncidentUseCase{
		incidentRepo: incidentRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *UpdateIncidentUseCase) Execute(ctx context.Context, cmd UpdateIncidentCommand) (*IncidentResult, error) {
	decision := authorization.Scope(cmd.Actor, authorization.OpUpdate, authorization.ResourceIncident)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	inc, err := uc.incidentRepo.FindByID(ctx, cmd.IncidentID)
	if err != nil {
		uc.logger.Errorw("failed to load incident", "incident_id", cmd.IncidentID, "error", err)
		return nil, errors.NewInternalError("failed to update incident", err.Error())
	}
	if inc == nil {
		return nil, errors.NewNotFoundError("incident not found")
	}

	if !decision.PermitsIncident(inc.CompanyID(), inc.ReporterID(), inc.AssigneeID()) {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	if cmd.Title != nil {
		if err := inc.ChangeTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		inc.ChangeDescription(sanitizeContent(*cmd.Description))
	}
	if cmd.Status != nil {
		if err := inc.ChangeStatus(incident.Status(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		if err := inc.ChangePriority(incident.Priority(*cmd.Priority)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	// Assignment changes are staff-only; for company-bound reporters the
	// fields are dropped so clients can post the full form object.
	if staffActor(cmd.Actor) {
		if err := uc.applyAssignment(ctx, inc, cmd); err != nil {
			return nil, err
		}
	}

	if err := uc.incidentRepo.Update(ctx, inc); err != nil {
		uc.logger.Errorw("failed to update incident", "incident_id", inc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update incident", err.Error())
	}

	uc.logger.Infow("incident updated", "incident_id", inc.ID(), "status", inc.Status())
	return toIncidentResult(inc), nil
}

func staffActor(actor authorization.Actor) bool {
	return actor.Role.IsSuperadmin() || actor.Role == authorization.RoleAgent
}

func (uc *UpdateIncidentUseCase) applyAssignment(ctx context.Context, inc *incident.Incident, cmd UpdateIncidentCommand) error {
	switch {
	case cmd.Unassign:
		inc.Unassign()
	case cmd.AssigneeID != nil:
		assignee, err := uc.userRepo.FindByID(ctx, *cmd.AssigneeID)
		if err != nil {
			uc.logger.Errorw("failed to load assignee", "user_id", *cmd.AssigneeID, "error", err)
			return errors.NewInternalError("failed to update incident", err.Error())
		}
		if assignee == nil {
			return errors.NewValidationError("assignee does not exist")
		}
		if !assignee.IsActive() {
			return errors.NewValidationError("assignee account is inactive")
		}
		if err := inc.AssignTo(assignee.ID()); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	return nil
}

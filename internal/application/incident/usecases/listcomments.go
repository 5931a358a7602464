package usecases

import (
	"context"

	"smartincident/internal/domain/incident"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type ListCommentsQuery struct {
	Actor      authorization.Actor
	IncidentID uint
}

type ListCommentsUseCase struct {
	incidentRepo   incident.Repository
	commentRepo    incident.CommentRepository
	attachmentRepo incident.AttachmentRepository
	logger         logger.Interface
}

func NewListCommentsUseCase(
	incidentRepo incident.Repository,
	commentRepo incident.CommentRepository,
	attachmentRepo incident.AttachmentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		incidentRepo:   incidentRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*CommentResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpRead, authorization.ResourceIncident)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	inc, err := uc.incidentRepo.FindByID(ctx, query.IncidentID)
	if err != nil {
		uc.logger.Errorw("failed to load incident", "incident_id", query.IncidentID, "error", err)
		return nil, errors.NewInternalError("failed to list comments", err.Error())
	}
	if inc == nil {
		return nil, errors.NewNotFoundError("incident not found")
	}

	if !decision.PermitsIncident(inc.CompanyID(), inc.ReporterID(), inc.AssigneeID()) {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	comments, err := uc.commentRepo.ListByIncident(ctx, inc.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "incident_id", inc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list comments", err.Error())
	}

	results := make([]*CommentResult, 0, len(comments))
	for _, c := range comments {
		attachments, err := uc.attachmentRepo.ListByComment(ctx, c.ID())
		if err != nil {
			uc.logger.Errorw("failed to list comment attachments", "comment_id", c.ID(), "error", err)
			return nil, errors.NewInternalError("failed to list comments", err.Error())
		}
		results = append(results, toCommentResult(c, attachments))
	}
	return results, nil
}

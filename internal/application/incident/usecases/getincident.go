package usecases

import (
	"context"

	"smartincident/internal/domain/incident"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type GetIncidentQuery struct {
	Actor      authorization.Actor
	IncidentID uint
}

// IncidentDetailResult is the full incident view: the incident itself, its
// direct attachments and the comment thread with per-comment attachments.
type IncidentDetailResult struct {
	Incident    *IncidentResult
	Attachments []*AttachmentResult
	Comments    []*CommentResult
}

type GetIncidentUseCase struct {
	incidentRepo   incident.Repository
	commentRepo    incident.CommentRepository
	attachmentRepo incident.AttachmentRepository
	logger         logger.Interface
}

func NewGetIncidentUseCase(
	incidentRepo incident.Repository,
	commentRepo incident.CommentRepository,
	attachmentRepo incident.AttachmentRepository,
	logger logger.Interface,
) *GetIncidentUseCase {
	return &GetIncidentUseCase{
		incidentRepo:   incidentRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetIncidentUseCase) Execute(ctx context.Context, query GetIncidentQuery) (*IncidentDetailResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpRead, authorization.ResourceIncident)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	inc, err := uc.incidentRepo.FindByID(ctx, query.IncidentID)
	if err != nil {
		uc.logger.Errorw("failed to load incident", "incident_id", query.IncidentID, "error", err)
		return nil, errors.NewInternalError("failed to load incident", err.Error())
	}
	if inc == nil {
		return nil, errors.NewNotFoundError("incident not found")
	}

	if !decision.PermitsIncident(inc.CompanyID(), inc.ReporterID(), inc.AssigneeID()) {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	attachments, err := uc.attachmentRepo.ListByIncident(ctx, inc.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "incident_id", inc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load incident", err.Error())
	}

	comments, err := uc.commentRepo.ListByIncident(ctx, inc.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "incident_id", inc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load incident", err.Error())
	}

	result := &IncidentDetailResult{Incident: toIncidentResult(inc)}
	for _, a := range attachments {
		result.Attachments = append(result.Attachments, toAttachmentResult(a))
	}
	for _, c := range comments {
		commentAttachments, err := uc.attachmentRepo.ListByComment(ctx, c.ID())
		if err != nil {
			uc.logger.Errorw("failed to list comment attachments", "comment_id", c.ID(), "error", err)
			return nil, errors.NewInternalError("failed to load incident", err.Error())
		}
		result.Comments = append(result.Comments, toCommentResult(c, commentAttachments))
	}

	return result, nil
}

package usecases

import (
	"context"

	"smartincident/internal/domain/incident"
	"smartincident/internal/domain/user"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor      authorization.Actor
	AuthorName string
	IncidentID uint
	Content    string
	Attachment *Upload
}

type AddCommentUseCase struct {
	incidentRepo   incident.Repository
	commentRepo    incident.CommentRepository
	attachmentRepo incident.AttachmentRepository
	userRepo       user.Repository
	storage        FileStorage
	email          EmailSender
	dispatcher     Dispatcher
	logger         logger.Interface
}

func NewAddCommentUseCase(
	incidentRepo incident.Repository,
	commentRepo incident.CommentRepository,
	attachmentRepo incident.AttachmentRepository,
	userRepo user.Repository,
	storage FileStorage,
	email EmailSender,
	dispatcher Dispatcher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		incidentRepo:   incidentRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		storage:        storage,
		email:          email,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentResult, error) {
	// Commenting requires read access to the incident.
	decision := authorization.Scope(cmd.Actor, authorization.OpRead, authorization.ResourceIncident)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	// A comment may be text, a file, or both, but never neither.
	if cmd.Content == "" && cmd.Attachment == nil {
		return nil, errors.NewValidationError("comment content or file is required")
	}

	inc, err := uc.incidentRepo.FindByID(ctx, cmd.IncidentID)
	if err != nil {
		uc.logger.Errorw("failed to load incident", "incident_id", cmd.IncidentID, "error", err)
		return nil, errors.NewInternalError("failed to add comment", err.Error())
	}
	if inc == nil {
		return nil, errors.NewNotFoundError("incident not found")
	}

	if !decision.PermitsIncident(inc.CompanyID(), inc.ReporterID(), inc.AssigneeID()) {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	comment, err := incident.NewComment(inc.ID(), cmd.Actor.UserID, sanitizeContent(cmd.Content))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "incident_id", inc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to add comment", err.Error())
	}

	var attachments []*incident.Attachment
	if cmd.Attachment != nil {
		att, err := uc.attachUpload(ctx, comment.ID(), cmd.Attachment)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, att)
	}

	uc.logger.Infow("comment added",
		"incident_id", inc.ID(), "comment_id", comment.ID(), "author_id", comment.AuthorID())

	uc.notifyReporter(inc, comment, cmd.AuthorName)

	return toCommentResult(comment, attachments), nil
}

func (uc *AddCommentUseCase) attachUpload(ctx context.Context, commentID uint, up *Upload) (*incident.Attachment, error) {
	stored, err := uc.storage.Save(up.FileName, up.Content)
	if err != nil {
		uc.logger.Errorw("failed to store attachment", "comment_id", commentID, "error", err)
		return nil, errors.NewInternalError("failed to store attachment", err.Error())
	}

	att, err := incident.NewCommentAttachment(commentID, up.FileName, stored.Path, up.MimeType, stored.Size)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.attachmentRepo.Save(ctx, att); err != nil {
		uc.logger.Errorw("failed to save attachment", "comment_id", commentID, "error", err)
		return nil, errors.NewInternalError("failed to store attachment", err.Error())
	}
	return att, nil
}

// notifyReporter emails the incident reporter about the new comment, unless
// they wrote it themselves.
func (uc *AddCommentUseCase) notifyReporter(inc *incident.Incident, comment *incident.Comment, authorName string) {
	if inc.ReporterID() == comment.AuthorID() {
		return
	}

	reporterID := inc.ReporterID()
	code := ""
	if inc.TicketCode() != nil {
		code = *inc.TicketCode()
	}
	content := comment.Content()

	uc.dispatcher.Enqueue("comment-added-email", func(taskCtx context.Context) error {
		reporter, err := uc.userRepo.FindByID(taskCtx, reporterID)
		if err != nil {
			return err
		}
		if reporter == nil || !reporter.IsActive() {
			return nil
		}
		return uc.email.SendCommentAddedEmail(taskCtx, reporter.Email(), code, authorName, content)
	})
}

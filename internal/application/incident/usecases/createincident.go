package usecases

import (
	"context"
	"time"

	"smartincident/internal/domain/incident"
	"smartincident/internal/domain/tickettype"
	"smartincident/internal/domain/user"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type CreateIncidentCommand struct {
	Actor       authorization.Actor
	Title       string
	Description string
	Priority    string
	TypeID      uint

	// CompanyID is honored only for actors not bound to a company
	// (superadmin, staff agents); company-bound actors always report
	// under their own tenant.
	CompanyID *uint

	Attachment *Upload
}

type CreateIncidentUseCase struct {
	incidentRepo   incident.Repository
	attachmentRepo incident.AttachmentRepository
	typeRepo       tickettype.Repository
	userRepo       user.Repository
	storage        FileStorage
	email          EmailSender
	dispatcher     Dispatcher
	logger         logger.Interface
}

func NewCreateIncidentUseCase(
	incidentRepo incident.Repository,
	attachmentRepo incident.AttachmentRepository,
	typeRepo tickettype.Repository,
	userRepo user.Repository,
	storage FileStorage,
	email EmailSender,
	dispatcher Dispatcher,
	logger logger.Interface,
) *CreateIncidentUseCase {
	return &CreateIncidentUseCase{
		incidentRepo:   incidentRepo,
		attachmentRepo: attachmentRepo,
		typeRepo:       typeRepo,
		userRepo:       userRepo,
		storage:        storage,
		email:          email,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (uc *CreateIncidentUseCase) Execute(ctx context.Context, cmd CreateIncidentCommand) (*IncidentResult, error) {
	decision := authorization.Scope(cmd.Actor, authorization.OpCreate, authorization.ResourceIncident)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	tt, err := uc.typeRepo.FindByID(ctx, cmd.TypeID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket type", "type_id", cmd.TypeID, "error", err)
		return nil, errors.NewInternalError("failed to create incident", err.Error())
	}
	if tt == nil {
		return nil, errors.NewValidationError("ticket type does not exist")
	}

	companyID := uc.resolveCompany(cmd)

	inc, err := incident.NewIncident(
		cmd.Title,
		sanitizeContent(cmd.Description),
		incident.Priority(cmd.Priority),
		cmd.Actor.UserID,
		companyID,
		cmd.TypeID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := inc.SetTicketCode(incident.GenerateTicketCode(companyID, time.Now())); err != nil {
		return nil, errors.NewInternalError("failed to create incident", err.Error())
	}

	if err := uc.incidentRepo.Save(ctx, inc); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("ticket code collision, please retry")
		}
		uc.logger.Errorw("failed to save incident", "error", err)
		return nil, errors.NewInternalError("failed to create incident", err.Error())
	}

	if cmd.Attachment != nil {
		if err := uc.attachUpload(ctx, inc.ID(), cmd.Attachment); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("incident created",
		"incident_id", inc.ID(), "ticket_code", *inc.TicketCode(),
		"company_id", companyID, "reporter_id", inc.ReporterID())

	uc.notifyCreation(inc)

	return toIncidentResult(inc), nil
}

func (uc *CreateIncidentUseCase) resolveCompany(cmd CreateIncidentCommand) uint {
	if cmd.Actor.CompanyID != nil {
		return *cmd.Actor.CompanyID
	}
	if cmd.CompanyID != nil {
		return *cmd.CompanyID
	}
	return 0
}

func (uc *CreateIncidentUseCase) attachUpload(ctx context.Context, incidentID uint, up *Upload) error {
	stored, err := uc.storage.Save(up.FileName, up.Content)
	if err != nil {
		uc.logger.Errorw("failed to store attachment", "incident_id", incidentID, "error", err)
		return errors.NewInternalError("failed to store attachment", err.Error())
	}

	att, err := incident.NewIncidentAttachment(incidentID, up.FileName, stored.Path, up.MimeType, stored.Size)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.attachmentRepo.Save(ctx, att); err != nil {
		uc.logger.Errorw("failed to save attachment", "incident_id", incidentID, "error", err)
		return errors.NewInternalError("failed to store attachment", err.Error())
	}
	return nil
}

// notifyCreation emails the reporter a confirmation and every superadmin an
// alert about the new incident from the background queue; delivery failure
// never fails the request.
func (uc *CreateIncidentUseCase) notifyCreation(inc *incident.Incident) {
	code := *inc.TicketCode()
	title := inc.Title()
	description := inc.Description()
	reporterID := inc.ReporterID()

	uc.dispatcher.Enqueue("incident-created-email", func(taskCtx context.Context) error {
		reporter, err := uc.userRepo.FindByID(taskCtx, reporterID)
		if err != nil {
			return err
		}
		if reporter != nil && reporter.IsActive() {
			if err := uc.email.SendIncidentCreatedEmail(taskCtx, reporter.Email(), code, title, description); err != nil {
				uc.logger.Warnw("incident notification failed",
					"ticket_code", code, "to", reporter.Email(), "error", err)
			}
		}

		admins, err := uc.userRepo.FindByRole(taskCtx, authorization.RoleSuperadmin)
		if err != nil {
			return err
		}
		for _, admin := range admins {
			if !admin.IsActive() || admin.ID() == reporterID {
				continue
			}
			if err := uc.email.SendIncidentCreatedEmail(taskCtx, admin.Email(), code, title, description); err != nil {
				uc.logger.Warnw("incident notification failed",
					"ticket_code", code, "to", admin.Email(), "error", err)
			}
		}
		return nil
	})
}

package usecases

import (
	"context"

	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type SendTestEmailCommand struct {
	Actor authorization.Actor
	To    string
}

type EmailSender interface {
	SendTestEmail(ctx context.Context, to string) error
}

// SendTestEmailUseCase sends a probe message synchronously so the caller
// sees delivery errors immediately instead of losing them to the queue.
type SendTestEmailUseCase struct {
	email  EmailSender
	logger logger.Interface
}

func NewSendTestEmailUseCase(email EmailSender, logger logger.Interface) *SendTestEmailUseCase {
	return &SendTestEmailUseCase{email: email, logger: logger}
}

func (uc *SendTestEmailUseCase) Execute(ctx context.Context, cmd SendTestEmailCommand) error {
	decision := authorization.Scope(cmd.Actor, authorization.OpUpdate, authorization.ResourceSettings)
	if !decision.Allow {
		return errors.NewForbiddenError("insufficient permissions")
	}

	if len(cmd.To) == 0 {
		return errors.NewValidationError("recipient email is required")
	}

	if err := uc.email.SendTestEmail(ctx, cmd.To); err != nil {
		uc.logger.Warnw("test email failed", "to", cmd.To, "error", err)
		return errors.NewInternalError("test email delivery failed", err.Error())
	}

	uc.logger.Infow("test email sent", "to", cmd.To)
	return nil
}

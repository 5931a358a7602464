package usecases

import (
	"context"
	"time"

	"smartincident/internal/domain/user"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

const resetTokenTTL = time.Hour

type ForgotPasswordCommand struct {
	Email string
}

type ForgotPasswordUseCase struct {
	userRepo   user.Repository
	tokens     ResetTokenGenerator
	email      EmailSender
	dispatcher Dispatcher
	logger     logger.Interface
}

func NewForgotPasswordUseCase(
	userRepo user.Repository,
	tokens ResetTokenGenerator,
	email EmailSender,
	dispatcher Dispatcher,
	logger logger.Interface,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:   userRepo,
		tokens:     tokens,
		email:      email,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, cmd ForgotPasswordCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user for password reset", "error", err)
		return errors.NewInternalError("password reset failed", err.Error())
	}
	if u == nil {
		return errors.NewNotFoundError("no account with that email")
	}

	token, err := uc.tokens()
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err)
		return errors.NewInternalError("password reset failed", err.Error())
	}

	u.IssueResetToken(token, resetTokenTTL)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to store reset token", "user_id", u.ID(), "error", err)
		return errors.NewInternalError("password reset failed", err.Error())
	}

	// The caller gets success regardless of delivery; failures are logged by
	// the dispatcher worker.
	to := u.Email()
	uc.dispatcher.Enqueue("password-reset-email", func(taskCtx context.Context) error {
		return uc.email.SendPasswordResetEmail(taskCtx, to, token)
	})

	uc.logger.Infow("password reset token issued", "user_id", u.ID())
	return nil
}

package usecases

import (
	"context"
	"time"

	"smartincident/internal/domain/user"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if len(cmd.Token) == 0 {
		return errors.NewInvalidTokenError("invalid or expired reset token")
	}
	if len(cmd.NewPassword) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	u, err := uc.userRepo.FindByResetToken(ctx, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to look up reset token", "error", err)
		return errors.NewInternalError("password reset failed", err.Error())
	}
	if u == nil || !u.ResetTokenValid(cmd.Token, time.Now()) {
		return errors.NewInvalidTokenError("invalid or expired reset token")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("password reset failed", err.Error())
	}

	// Clears the token so it cannot be replayed.
	u.ConsumeResetToken(hash)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to store new password", "user_id", u.ID(), "error", err)
		return errors.NewInternalError("password reset failed", err.Error())
	}

	uc.logger.Infow("password reset completed", "user_id", u.ID())
	return nil
}

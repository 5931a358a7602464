package usecases

import (
	"context"

	"smartincident/internal/domain/user"
	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type DeleteUserCommand struct {
	Actor  authorization.Actor
	UserID uint
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	cascader CascadeDeleter
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	cascader CascadeDeleter,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		cascader: cascader,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	decision := authorization.Scope(cmd.Actor, authorization.OpDelete, authorization.ResourceUser)
	if !decision.Allow {
		return errors.NewForbiddenError("insufficient permissions")
	}

	if cmd.Actor.UserID == cmd.UserID {
		return errors.NewValidationError("you cannot delete your own account")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to delete user", err.Error())
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.cascader.Delete(ctx, cascade.KindUser, u.ID()); err != nil {
		uc.logger.Errorw("user cascade deletion failed", "user_id", u.ID(), "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", u.ID(), "email", u.Email())
	return nil
}

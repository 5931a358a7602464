package usecases

import (
	"context"

	"smartincident/internal/domain/user"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type GetUserQuery struct {
	Actor  authorization.Actor
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*UserResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpRead, authorization.ResourceUser)
	if !decision.Allow || !decision.PermitsUser(query.UserID) {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load user", err.Error())
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return toUserResult(u), nil
}

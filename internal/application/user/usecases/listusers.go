package usecases

import (
	"context"

	"smartincident/internal/domain/user"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type ListUsersQuery struct {
	Actor authorization.Actor
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*UserResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpList, authorization.ResourceUser)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users", err.Error())
	}

	results := make([]*UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, toUserResult(u))
	}
	return results, nil
}

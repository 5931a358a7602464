package usecases

import (
	"context"

	"smartincident/internal/domain/tickettype"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type ListTicketTypesQuery struct {
	Actor authorization.Actor
}

type ListTicketTypesUseCase struct {
	typeRepo tickettype.Repository
	logger   logger.Interface
}

func NewListTicketTypesUseCase(typeRepo tickettype.Repository, logger logger.Interface) *ListTicketTypesUseCase {
	return &ListTicketTypesUseCase{typeRepo: typeRepo, logger: logger}
}

func (uc *ListTicketTypesUseCase) Execute(ctx context.Context, query ListTicketTypesQuery) ([]*TicketTypeResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpList, authorization.ResourceTicketType)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list ticket types", "error", err)
		return nil, errors.NewInternalError("failed to list ticket types", err.Error())
	}

	results := make([]*TicketTypeResult, 0, len(types))
	for _, tt := range types {
		results = append(results, toTicketTypeResult(tt))
	}
	return results, nil
}

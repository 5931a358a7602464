package usecases

import (
	"context"

	"smartincident/internal/domain/tickettype"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type GetTicketTypeQuery struct {
	Actor  authorization.Actor
	TypeID uint
}

type GetTicketTypeUseCase struct {
	typeRepo tickettype.Repository
	logger   logger.Interface
}

func NewGetTicketTypeUseCase(typeRepo tickettype.Repository, logger logger.Interface) *GetTicketTypeUseCase {
	return &GetTicketTypeUseCase{typeRepo: typeRepo, logger: logger}
}

func (uc *GetTicketTypeUseCase) Execute(ctx context.Context, query GetTicketTypeQuery) (*TicketTypeResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpRead, authorization.ResourceTicketType)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	tt, err := uc.typeRepo.FindByID(ctx, query.TypeID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket type", "type_id", query.TypeID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket type", err.Error())
	}
	if tt == nil {
		return nil, errors.NewNotFoundError("ticket type not found")
	}

	return toTicketTypeResult(tt), nil
}

package usecases

import (
	"context"

	"smartincident/internal/domain/company"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type ListCompaniesQuery struct {
	Actor authorization.Actor
}

type ListCompaniesUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, query ListCompaniesQuery) ([]*CompanyResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpList, authorization.ResourceCompany)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	companies, err := uc.companyRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, errors.NewInternalError("failed to list companies", err.Error())
	}

	results := make([]*CompanyResult, 0, len(companies))
	for _, c := range companies {
		results = append(results, toCompanyResult(c))
	}
	return results, nil
}

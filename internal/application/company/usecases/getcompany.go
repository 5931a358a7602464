package usecases

import (
	"context"
	"time"

	"smartincident/internal/domain/company"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type GetCompanyQuery struct {
	Actor     authorization.Actor
	CompanyID uint
}

type CompanyResult struct {
	CompanyID    uint
	Name         string
	Status       string
	Address      string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type GetCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewGetCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, query GetCompanyQuery) (*CompanyResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpRead, authorization.ResourceCompany)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	c, err := uc.companyRepo.FindByID(ctx, query.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", query.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to load company", err.Error())
	}
	if c == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	if !decision.PermitsCompany(c.ID()) {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	return toCompanyResult(c), nil
}

func toCompanyResult(c *company.Company) *CompanyResult {
	return &CompanyResult{
		CompanyID:    c.ID(),
		Name:         c.Name(),
		Status:       c.Status().String(),
		Address:      c.Address(),
		ContactEmail: c.ContactEmail(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

package usecases

import (
	"context"
	"time"

	"smartincident/internal/domain/company"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type CreateCompanyCommand struct {
	Name         string
	Address      string
	ContactEmail string
}

type CreateCompanyResult struct {
	CompanyID uint
	Name      string
	Status    string
	CreatedAt time.Time
}

type CreateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*CreateCompanyResult, error) {
	c, err := company.NewCompany(cmd.Name, cmd.Address, cmd.ContactEmail)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save company", "name", cmd.Name, "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a company with that name already exists")
		}
		return nil, errors.NewInternalError("failed to create company", err.Error())
	}

	uc.logger.Infow("company created", "company_id", c.ID(), "name", c.Name())

	return &CreateCompanyResult{
		CompanyID: c.ID(),
		Name:      c.Name(),
		Status:    c.Status().String(),
		CreatedAt: c.CreatedAt(),
	}, nil
}

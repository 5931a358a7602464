package usecases

import (
	"context"

	"smartincident/internal/domain/company"
	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type DeleteCompanyCommand struct {
	CompanyID uint
}

type DeleteCompanyUseCase struct {
	companyRepo company.Repository
	cascader    CascadeDeleter
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(
	companyRepo company.Repository,
	cascader CascadeDeleter,
	logger logger.Interface,
) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		companyRepo: companyRepo,
		cascader:    cascader,
		logger:      logger,
	}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, cmd DeleteCompanyCommand) error {
	c, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return errors.NewInternalError("failed to delete company", err.Error())
	}
	if c == nil {
		return errors.NewNotFoundError("company not found")
	}

	if err := uc.cascader.Delete(ctx, cascade.KindCompany, c.ID()); err != nil {
		uc.logger.Errorw("company cascade deletion failed", "company_id", c.ID(), "error", err)
		return err
	}

	uc.logger.Infow("company deleted", "company_id", c.ID(), "name", c.Name())
	return nil
}

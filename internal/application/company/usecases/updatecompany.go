package usecases

import (
	"context"

	"smartincident/internal/domain/company"
	"smartincident/internal/domain/user"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type UpdateCompanyCommand struct {
	CompanyID    uint
	Name         *string
	Status       *string
	Address      *string
	ContactEmail *string
}

type UpdateCompanyUseCase struct {
	companyRepo company.Repository
	userRepo    user.Repository
	txManager   TxManager
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(
	companyRepo company.Repository,
	userRepo user.Repository,
	txManager TxManager,
	logger logger.Interface,
) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) error {
	c, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return errors.NewInternalError("failed to update company", err.Error())
	}
	if c == nil {
		return errors.NewNotFoundError("company not found")
	}

	if cmd.Name != nil {
		if err := c.Rename(*cmd.Name); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Address != nil || cmd.ContactEmail != nil {
		address := c.Address()
		contactEmail := c.ContactEmail()
		if cmd.Address != nil {
			address = *cmd.Address
		}
		if cmd.ContactEmail != nil {
			contactEmail = *cmd.ContactEmail
		}
		c.UpdateContact(address, contactEmail)
	}

	deactivated := false
	if cmd.Status != nil {
		deactivated, err = c.ChangeStatus(company.Status(*cmd.Status))
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	// Deactivation propagates to the company's users in the same
	// transaction; reactivation intentionally does not.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.companyRepo.Update(txCtx, c); err != nil {
			return err
		}
		if deactivated {
			return uc.userRepo.DeactivateByCompany(txCtx, c.ID())
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update company", "company_id", c.ID(), "error", err)
		return errors.NewInternalError("failed to update company", err.Error())
	}

	if deactivated {
		uc.logger.Infow("company deactivated, users force-deactivated", "company_id", c.ID())
	}

	return nil
}

package usecases

import (
	"context"

	"smartincident/internal/domain/company"
	"smartincident/internal/domain/user"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type UpdateUserCommand struct {
	Actor  authorization.Actor
	UserID uint

	Name     *string
	Email    *string
	Password *string

	// Administrative fields. Silently ignored when the actor is editing
	// their own record without superadmin rights.
	Role      *string
	Status    *string
	CompanyID *uint
	// ClearCompany detaches the user from any company. Mutually exclusive
	// with CompanyID.
	ClearCompany bool
}

type UpdateUserUseCase struct {
	userRepo    user.Repository
	companyRepo company.Repository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	companyRepo company.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserResult, error) {
	decision := authorization.Scope(cmd.Actor, authorization.OpUpdate, authorization.ResourceUser)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}
	if !decision.PermitsUser(cmd.UserID) {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user", err.Error())
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Name != nil || cmd.Email != nil {
		name := u.Name()
		email := u.Email()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		if cmd.Email != nil {
			email = *cmd.Email
		}
		if err := u.UpdateProfile(name, email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < 8 {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "user_id", u.ID(), "error", err)
			return nil, errors.NewInternalError("failed to update user", err.Error())
		}
		u.SetPasswordHash(hash)
	}

	// Role, status and company changes are superadmin-only; for everyone
	// else they are dropped, not rejected, so self-service profile forms
	// can post the full object.
	if cmd.Actor.Role.IsSuperadmin() {
		if err := uc.applyAdminFields(ctx, u, cmd); err != nil {
			return nil, err
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with that email already exists")
		}
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update user", err.Error())
	}

	uc.logger.Infow("user updated", "user_id", u.ID())
	return toUserResult(u), nil
}

func (uc *UpdateUserUseCase) applyAdminFields(ctx context.Context, u *user.User, cmd UpdateUserCommand) error {
	if cmd.Role != nil {
		role, ok := authorization.ParseRole(*cmd.Role)
		if !ok {
			return errors.NewValidationError("invalid role: " + *cmd.Role)
		}
		if err := u.ChangeRole(role); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != nil {
		if err := u.ChangeStatus(user.Status(*cmd.Status)); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	switch {
	case cmd.ClearCompany:
		if err := u.AssignCompany(nil); err != nil {
			return errors.NewValidationError(err.Error())
		}
	case cmd.CompanyID != nil:
		c, err := uc.companyRepo.FindByID(ctx, *cmd.CompanyID)
		if err != nil {
			uc.logger.Errorw("failed to load company", "company_id", *cmd.CompanyID, "error", err)
			return errors.NewInternalError("failed to update user", err.Error())
		}
		if c == nil {
			return errors.NewValidationError("company does not exist")
		}
		if err := u.AssignCompany(cmd.CompanyID); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	return nil
}

package usecases

import (
	"context"
	"time"

	"smartincident/internal/domain/company"
	"smartincident/internal/domain/user"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type CreateUserCommand struct {
	Name      string
	Email     string
	Password  string
	Role      string
	CompanyID *uint
}

type UserResult struct {
	UserID    uint
	Name      string
	Email     string
	Role      string
	Status    string
	CompanyID *uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateUserUseCase struct {
	userRepo    user.Repository
	companyRepo company.Repository
	hasher      PasswordHasher
	email       EmailSender
	dispatcher  Dispatcher
	logger      logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	companyRepo company.Repository,
	hasher PasswordHasher,
	email EmailSender,
	dispatcher Dispatcher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		hasher:      hasher,
		email:       email,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*UserResult, error) {
	role, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role: " + cmd.Role)
	}

	if cmd.CompanyID != nil {
		c, err := uc.companyRepo.FindByID(ctx, *cmd.CompanyID)
		if err != nil {
			uc.logger.Errorw("failed to load company", "company_id", *cmd.CompanyID, "error", err)
			return nil, errors.NewInternalError("failed to create user", err.Error())
		}
		if c == nil {
			return nil, errors.NewValidationError("company does not exist")
		}
	}

	var hash *string
	if cmd.Password != "" {
		if len(cmd.Password) < 8 {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		h, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to create user", err.Error())
		}
		hash = &h
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, role, cmd.CompanyID, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with that email already exists")
		}
		uc.logger.Errorw("failed to save user", "email", u.Email(), "error", err)
		return nil, errors.NewInternalError("failed to create user", err.Error())
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "email", u.Email(), "role", u.Role())

	to, name := u.Email(), u.Name()
	uc.dispatcher.Enqueue("welcome-email", func(taskCtx context.Context) error {
		return uc.email.SendWelcomeEmail(taskCtx, to, name)
	})

	return toUserResult(u), nil
}

func toUserResult(u *user.User) *UserResult {
	return &UserResult{
		UserID:    u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      string(u.Role()),
		Status:    u.Status().String(),
		CompanyID: u.CompanyID(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

package usecases

import (
	"context"

	"smartincident/internal/domain/user"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uint
	Name      string
	Email     string
	Role      string
	CompanyID *uint
	Token     string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, errors.NewInternalError("login failed", err.Error())
	}

	// One generic message for unknown email, pending first login, and wrong
	// password, so the response does not reveal which accounts exist.
	if u == nil || u.PasswordHash() == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if err := uc.hasher.Verify(cmd.Password, *u.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !u.IsActive() {
		return nil, errors.NewForbiddenError("account is inactive")
	}

	token, err := uc.tokens.Generate(u.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("login failed", err.Error())
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())

	return &LoginResult{
		UserID:    u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CompanyID: u.CompanyID(),
		Token:     token,
	}, nil
}

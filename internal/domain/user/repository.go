package user

import (
	"context"

	"smartincident/internal/shared/authorization"
)

// Repository persists users. Row deletion is owned by the cascade deletion
// engine; DeactivateByCompany exists for the company status propagation rule.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByResetToken(ctx context.Context, token string) (*User, error)
	FindByRole(ctx context.Context, role authorization.Role) ([]*User, error)
	List(ctx context.Context) ([]*User, error)

	// DeactivateByCompany force-transitions every user of the company to
	// inactive. Reactivation never propagates.
	DeactivateByCompany(ctx context.Context, companyID uint) error
}

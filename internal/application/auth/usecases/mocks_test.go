package usecases

import (
	"context"

	"smartincident/internal/domain/user"
	"smartincident/internal/infrastructure/notification"
	"smartincident/internal/shared/authorization"
)

type mockUserRepository struct {
	SaveFunc                func(ctx context.Context, u *user.User) error
	UpdateFunc              func(ctx context.Context, u *user.User) error
	FindByIDFunc            func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc         func(ctx context.Context, email string) (*user.User, error)
	FindByResetTokenFunc    func(ctx context.Context, token string) (*user.User, error)
	FindByRoleFunc          func(ctx context.Context, role authorization.Role) ([]*user.User, error)
	ListFunc                func(ctx context.Context) ([]*user.User, error)
	DeactivateByCompanyFunc func(ctx context.Context, companyID uint) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByResetToken(ctx context.Context, token string) (*user.User, error) {
	if m.FindByResetTokenFunc != nil {
		return m.FindByResetTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByRole(ctx context.Context, role authorization.Role) ([]*user.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) DeactivateByCompany(ctx context.Context, companyID uint) error {
	if m.DeactivateByCompanyFunc != nil {
		return m.DeactivateByCompanyFunc(ctx, companyID)
	}
	return nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	return "token", nil
}

type mockEmailSender struct {
	SendPasswordResetEmailFunc func(ctx context.Context, to, token string) error
}

func (m *mockEmailSender) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	if m.SendPasswordResetEmailFunc != nil {
		return m.SendPasswordResetEmailFunc(ctx, to, token)
	}
	return nil
}

// mockDispatcher runs tasks synchronously so tests observe their effects.
type mockDispatcher struct {
	Enqueued []string
	RunTasks bool
}

func (m *mockDispatcher) Enqueue(name string, task notification.Task) {
	m.Enqueued = append(m.Enqueued, name)
	if m.RunTasks {
		_ = task(context.Background())
	}
}

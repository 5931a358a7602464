package usecases

import (
	"context"

	"smartincident/internal/domain/company"
	"smartincident/internal/domain/user"
	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/infrastructure/notification"
	"smartincident/internal/shared/authorization"
)

type mockUserRepository struct {
	SaveFunc     func(ctx context.Context, u *user.User) error
	UpdateFunc   func(ctx context.Context, u *user.User) error
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
	ListFunc     func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u.SetID(1)
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
	return nil, nil
}

func (m *mockUserRepository) FindByResetToken(ctx context.Context, token string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByRole(ctx context.Context, role authorization.Role) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) DeactivateByCompany(ctx context.Context, companyID uint) error {
	return nil
}

type mockCompanyRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*company.Company, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error   { return nil }
func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error { return nil }

func (m *mockCompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCompanyRepository) FindByIDs(ctx context.Context, ids []uint) ([]*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	return nil, nil
}

type mockHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

type mockEmailSender struct {
	Welcomed []string
}

func (m *mockEmailSender) SendWelcomeEmail(ctx context.Context, to, name string) error {
	m.Welcomed = append(m.Welcomed, to)
	return nil
}

// mockDispatcher records enqueued task names and optionally runs the task
// synchronously so tests can observe its side effects.
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

type mockCascadeDeleter struct {
	DeleteFunc func(ctx context.Context, kind cascade.Kind, id uint) error
	Deleted    []uint
}

func (m *mockCascadeDeleter) Delete(ctx context.Context, kind cascade.Kind, id uint) error {
	m.Deleted = append(m.Deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, kind, id)
	}
	return nil
}

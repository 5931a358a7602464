package usecases

import (
	"context"

	"smartincident/internal/domain/company"
	"smartincident/internal/domain/user"
	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/shared/authorization"
)

type mockCompanyRepository struct {
	SaveFunc     func(ctx context.Context, c *company.Company) error
	UpdateFunc   func(ctx context.Context, c *company.Company) error
	FindByIDFunc func(ctx context.Context, id uint) (*company.Company, error)
	ListFunc     func(ctx context.Context) ([]*company.Company, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

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
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	DeactivateByCompanyFunc func(ctx context.Context, companyID uint) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
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
func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }

func (m *mockUserRepository) DeactivateByCompany(ctx context.Context, companyID uint) error {
	if m.DeactivateByCompanyFunc != nil {
		return m.DeactivateByCompanyFunc(ctx, companyID)
	}
	return nil
}

// mockTxManager runs the function directly; Ran records whether a
// transaction was opened at all.
type mockTxManager struct {
	Ran bool
	Err error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Ran = true
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx)
}

type mockCascadeDeleter struct {
	DeleteFunc func(ctx context.Context, kind cascade.Kind, id uint) error
	Calls      []cascade.Kind
}

func (m *mockCascadeDeleter) Delete(ctx context.Context, kind cascade.Kind, id uint) error {
	m.Calls = append(m.Calls, kind)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, kind, id)
	}
	return nil
}

// Package testutil holds shared test doubles and HTTP helpers used by the
// service and handler test suites.
package testutil

import (
	"context"

	"magicpill/internal/portal/model"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of repository.Repository.
type MockRepository struct {
	mock.Mock
}

// WithSession runs fn directly on the given context, mirroring the real
// implementation's pass-through behavior, unless an expectation forces an
// error.
func (m *MockRepository) WithSession(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

func (m *MockRepository) NextUserID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID int) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockRepository) ListUsersByCompany(ctx context.Context, companyID int) ([]*model.User, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockRepository) InsertUser(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) UpdateUser(ctx context.Context, userID int, fields map[string]interface{}) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

func (m *MockRepository) BulkInsertUsers(ctx context.Context, users []*model.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *MockRepository) BulkUpdateUsers(ctx context.Context, updates []model.UserUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockRepository) ListCompanies(ctx context.Context) ([]*model.InsuranceCompany, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.InsuranceCompany), args.Error(1)
}

func (m *MockRepository) GetCompanyByID(ctx context.Context, companyID int) (*model.InsuranceCompany, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InsuranceCompany), args.Error(1)
}

func (m *MockRepository) CompanyExists(ctx context.Context, companyID int) (bool, error) {
	args := m.Called(ctx, companyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListCompaniesByIDs(ctx context.Context, companyIDs []int) ([]*model.InsuranceCompany, error) {
	args := m.Called(ctx, companyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.InsuranceCompany), args.Error(1)
}

func (m *MockRepository) ListPlans(ctx context.Context) ([]*model.MagicPillPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MagicPillPlan), args.Error(1)
}

func (m *MockRepository) GetPlanByID(ctx context.Context, planID int) (*model.MagicPillPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MagicPillPlan), args.Error(1)
}

func (m *MockRepository) PlanExists(ctx context.Context, planID int) (bool, error) {
	args := m.Called(ctx, planID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) NextAdminID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListAdmins(ctx context.Context) ([]*model.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Admin), args.Error(1)
}

func (m *MockRepository) GetAdminByID(ctx context.Context, adminID int) (*model.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockRepository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockRepository) InsertAdmin(ctx context.Context, a *model.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) UpdateAdmin(ctx context.Context, adminID int, fields map[string]interface{}) error {
	args := m.Called(ctx, adminID, fields)
	return args.Error(0)
}

func (m *MockRepository) DeleteAdmin(ctx context.Context, adminID int) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

func (m *MockRepository) AddAdminCompany(ctx context.Context, adminID, companyID int) error {
	args := m.Called(ctx, adminID, companyID)
	return args.Error(0)
}

func (m *MockRepository) RemoveAdminCompany(ctx context.Context, adminID, companyID int) (bool, error) {
	args := m.Called(ctx, adminID, companyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) NextDrugID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListDrugs(ctx context.Context) ([]*model.Drug, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Drug), args.Error(1)
}

func (m *MockRepository) GetDrugByID(ctx context.Context, drugID int) (*model.Drug, error) {
	args := m.Called(ctx, drugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Drug), args.Error(1)
}

func (m *MockRepository) InsertDrug(ctx context.Context, d *model.Drug) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

package repository

import (
	"context"
	"errors"

	"magicpill/internal/portal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Repository is the persistence gateway. Bulk operations are all-or-nothing:
// inside a WithSession scope each grouped write runs in its own transaction,
// so a failed phase rolls back without touching the others.
type Repository interface {
	// WithSession runs fn inside one scoped store session. The session is
	// released on every exit path.
	WithSession(ctx context.Context, fn func(ctx context.Context) error) error

	// Users
	NextUserID(ctx context.Context) (int, error)
	GetUserByID(ctx context.Context, userID int) (*model.User, error)
	ListUsersByCompany(ctx context.Context, companyID int) ([]*model.User, error)
	InsertUser(ctx context.Context, u *model.User) error
	UpdateUser(ctx context.Context, userID int, fields map[string]interface{}) error
	BulkInsertUsers(ctx context.Context, users []*model.User) error
	BulkUpdateUsers(ctx context.Context, updates []model.UserUpdate) error

	// Companies
	ListCompanies(ctx context.Context) ([]*model.InsuranceCompany, error)
	GetCompanyByID(ctx context.Context, companyID int) (*model.InsuranceCompany, error)
	CompanyExists(ctx context.Context, companyID int) (bool, error)
	ListCompaniesByIDs(ctx context.Context, companyIDs []int) ([]*model.InsuranceCompany, error)

	// Plans
	ListPlans(ctx context.Context) ([]*model.MagicPillPlan, error)
	GetPlanByID(ctx context.Context, planID int) (*model.MagicPillPlan, error)
	PlanExists(ctx context.Context, planID int) (bool, error)

	// Admins
	NextAdminID(ctx context.Context) (int, error)
	ListAdmins(ctx context.Context) ([]*model.Admin, error)
	GetAdminByID(ctx context.Context, adminID int) (*model.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	InsertAdmin(ctx context.Context, a *model.Admin) error
	UpdateAdmin(ctx context.Context, adminID int, fields map[string]interface{}) error
	DeleteAdmin(ctx context.Context, adminID int) error
	AddAdminCompany(ctx context.Context, adminID, companyID int) error
	RemoveAdminCompany(ctx context.Context, adminID, companyID int) (bool, error)

	// Drugs
	NextDrugID(ctx context.Context) (int, error)
	ListDrugs(ctx context.Context) ([]*model.Drug, error)
	GetDrugByID(ctx context.Context, drugID int) (*model.Drug, error)
	InsertDrug(ctx context.Context, d *model.Drug) error

	// Initialize indexes
	EnsureIndexes(ctx context.Context) error
}

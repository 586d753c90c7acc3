package service

import (
	"context"
	"errors"

	"magicpill/internal/portal/cache"
	"magicpill/internal/portal/model"
	"magicpill/internal/portal/repository"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrCompanyNotFound      = errors.New("insurance company not found")
	ErrPlanNotFound         = errors.New("magic pill plan not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrDrugNotFound         = errors.New("drug not found")
	ErrDuplicate            = errors.New("duplicate record")
	ErrCompanyNotAssociated = errors.New("insurance company not associated with admin")
)

// PortalService is the application surface consumed by the HTTP layer.
type PortalService interface {
	// Bulk endpoint core
	ProcessUserBatch(ctx context.Context, ops []model.BatchOperation) []model.BatchResult

	// Users
	AddUser(ctx context.Context, req model.AddUserReq) (*model.User, error)
	UpdateUser(ctx context.Context, userID int, req model.UpdateUserReq) (*model.User, error)
	ToggleUser(ctx context.Context, userID int) (bool, error)
	GetUser(ctx context.Context, userID int) (*model.UserDetail, error)

	// Catalog
	ListCompanies(ctx context.Context) ([]*model.InsuranceCompany, error)
	GetCompanyWithUsers(ctx context.Context, companyID int) (*model.CompanyWithUsers, error)
	ListPlans(ctx context.Context) ([]*model.MagicPillPlan, error)
	ListDrugs(ctx context.Context) ([]*model.Drug, error)
	GetDrug(ctx context.Context, drugID int) (*model.Drug, error)
	CreateDrug(ctx context.Context, req model.CreateDrugReq) (*model.Drug, error)

	// Admins
	ListAdmins(ctx context.Context) ([]*model.Admin, error)
	GetAdmin(ctx context.Context, adminID int) (*model.Admin, error)
	LookupAdminByEmail(ctx context.Context, email string) (*model.AdminLookup, error)
	CreateAdmin(ctx context.Context, req model.CreateAdminReq) (*model.Admin, error)
	UpdateAdmin(ctx context.Context, adminID int, req model.UpdateAdminReq) (*model.Admin, error)
	DeleteAdmin(ctx context.Context, adminID int) error
	ListAdminCompanies(ctx context.Context, adminID int) ([]*model.InsuranceCompany, error)
	AddAdminCompany(ctx context.Context, adminID, companyID int) error
	RemoveAdminCompany(ctx context.Context, adminID, companyID int) error
}

type Service struct {
	repo  repository.Repository
	cache *cache.Cache
}

func NewService(repo repository.Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

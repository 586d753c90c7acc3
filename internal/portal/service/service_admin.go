package service

import (
	"context"
	"errors"

	"magicpill/internal/portal/model"
	"magicpill/internal/portal/repository"
)

func (s *Service) ListAdmins(ctx context.Context) ([]*model.Admin, error) {
	return s.repo.ListAdmins(ctx)
}

func (s *Service) GetAdmin(ctx context.Context, adminID int) (*model.Admin, error) {
	a, err := s.repo.GetAdminByID(ctx, adminID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAdminNotFound
	}
	return a, err
}

func (s *Service) LookupAdminByEmail(ctx context.Context, email string) (*model.AdminLookup, error) {
	a, err := s.repo.GetAdminByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return &model.AdminLookup{Exists: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.AdminLookup{
		Exists:    true,
		AdminID:   a.AdminID,
		Email:     a.AdminEmail,
		Username:  a.AdminUsername,
		CompanyID: a.CompanyID,
	}, nil
}

func (s *Service) CreateAdmin(ctx context.Context, req model.CreateAdminReq) (*model.Admin, error) {
	if req.CompanyID != 0 {
		if ok, err := s.repo.CompanyExists(ctx, req.CompanyID); err != nil {
			return nil, err
		} else if !ok {
			return nil, ErrCompanyNotFound
		}
	}

	a := &model.Admin{
		AdminUsername: req.AdminUsername,
		AdminEmail:    req.AdminEmail,
		CompanyID:     req.CompanyID,
	}
	id, err := s.repo.NextAdminID(ctx)
	if err != nil {
		return nil, err
	}
	a.AdminID = id

	if err := s.repo.InsertAdmin(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) UpdateAdmin(ctx context.Context, adminID int, req model.UpdateAdminReq) (*model.Admin, error) {
	if req.CompanyID != nil {
		if ok, err := s.repo.CompanyExists(ctx, *req.CompanyID); err != nil {
			return nil, err
		} else if !ok {
			return nil, ErrCompanyNotFound
		}
	}

	fields := req.Fields()
	if len(fields) > 0 {
		err := s.repo.UpdateAdmin(ctx, adminID, fields)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		if err != nil {
			return nil, err
		}
	}

	a, err := s.repo.GetAdminByID(ctx, adminID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAdminNotFound
	}
	return a, err
}

func (s *Service) DeleteAdmin(ctx context.Context, adminID int) error {
	err := s.repo.DeleteAdmin(ctx, adminID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAdminNotFound
	}
	return err
}

func (s *Service) ListAdminCompanies(ctx context.Context, adminID int) ([]*model.InsuranceCompany, error) {
	a, err := s.repo.GetAdminByID(ctx, adminID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.repo.ListCompaniesByIDs(ctx, a.CompanyIDs)
}

func (s *Service) AddAdminCompany(ctx context.Context, adminID, companyID int) error {
	if ok, err := s.repo.CompanyExists(ctx, companyID); err != nil {
		return err
	} else if !ok {
		return ErrCompanyNotFound
	}

	err := s.repo.AddAdminCompany(ctx, adminID, companyID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAdminNotFound
	}
	return err
}

func (s *Service) RemoveAdminCompany(ctx context.Context, adminID, companyID int) error {
	if ok, err := s.repo.CompanyExists(ctx, companyID); err != nil {
		return err
	} else if !ok {
		return ErrCompanyNotFound
	}

	removed, err := s.repo.RemoveAdminCompany(ctx, adminID, companyID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAdminNotFound
	}
	if err != nil {
		return err
	}
	if !removed {
		return ErrCompanyNotAssociated
	}
	return nil
}

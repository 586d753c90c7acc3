package service

import (
	"context"
	"errors"

	"magicpill/internal/portal/model"
	"magicpill/internal/portal/repository"
)

func (s *Service) AddUser(ctx context.Context, req model.AddUserReq) (*model.User, error) {
	if ok, err := s.repo.PlanExists(ctx, req.PlanID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrPlanNotFound
	}
	if ok, err := s.repo.CompanyExists(ctx, req.CompanyID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrCompanyNotFound
	}

	u := req.ToUser()
	id, err := s.repo.NextUserID(ctx)
	if err != nil {
		return nil, err
	}
	u.UserID = id

	if err := s.repo.InsertUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, userID int, req model.UpdateUserReq) (*model.User, error) {
	if req.PlanID != nil {
		if ok, err := s.repo.PlanExists(ctx, *req.PlanID); err != nil {
			return nil, err
		} else if !ok {
			return nil, ErrPlanNotFound
		}
	}
	if req.CompanyID != nil {
		if ok, err := s.repo.CompanyExists(ctx, *req.CompanyID); err != nil {
			return nil, err
		} else if !ok {
			return nil, ErrCompanyNotFound
		}
	}

	fields := req.Fields()
	if len(fields) > 0 {
		err := s.repo.UpdateUser(ctx, userID, fields)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		if err != nil {
			return nil, err
		}
	}

	u, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// ToggleUser flips isActive from its current persisted state and returns the
// new value. Repeated calls alternate the state.
func (s *Service) ToggleUser(ctx context.Context, userID int) (bool, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, ErrUserNotFound
	}
	if err != nil {
		return false, err
	}

	next := !u.IsActive
	if err := s.repo.UpdateUser(ctx, userID, model.ToggleFields(next)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return next, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*model.UserDetail, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	detail := &model.UserDetail{User: *u}
	if company, err := s.repo.GetCompanyByID(ctx, u.CompanyID); err == nil {
		detail.InsuranceCompany = company
	}
	if plan, err := s.repo.GetPlanByID(ctx, u.PlanID); err == nil {
		detail.MagicPillPlan = plan
	}
	return detail, nil
}

package service

import (
	"context"
	"errors"

	"magicpill/internal/portal/model"
	"magicpill/internal/portal/repository"
)

// Cache keys for catalog listings.
const (
	cacheKeyCompanies = "catalog:companies"
	cacheKeyPlans     = "catalog:plans"
	cacheKeyDrugs     = "catalog:drugs"
)

func (s *Service) ListCompanies(ctx context.Context) ([]*model.InsuranceCompany, error) {
	var cached []*model.InsuranceCompany
	if s.cache.GetJSON(ctx, cacheKeyCompanies, &cached) {
		return cached, nil
	}

	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cacheKeyCompanies, companies)
	return companies, nil
}

func (s *Service) GetCompanyWithUsers(ctx context.Context, companyID int) (*model.CompanyWithUsers, error) {
	company, err := s.repo.GetCompanyByID(ctx, companyID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}

	users, err := s.repo.ListUsersByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &model.CompanyWithUsers{Company: company, Users: users}, nil
}

func (s *Service) ListPlans(ctx context.Context) ([]*model.MagicPillPlan, error) {
	var cached []*model.MagicPillPlan
	if s.cache.GetJSON(ctx, cacheKeyPlans, &cached) {
		return cached, nil
	}

	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cacheKeyPlans, plans)
	return plans, nil
}

func (s *Service) ListDrugs(ctx context.Context) ([]*model.Drug, error) {
	var cached []*model.Drug
	if s.cache.GetJSON(ctx, cacheKeyDrugs, &cached) {
		return cached, nil
	}

	drugs, err := s.repo.ListDrugs(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cacheKeyDrugs, drugs)
	return drugs, nil
}

func (s *Service) GetDrug(ctx context.Context, drugID int) (*model.Drug, error) {
	d, err := s.repo.GetDrugByID(ctx, drugID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDrugNotFound
	}
	return d, err
}

func (s *Service) CreateDrug(ctx context.Context, req model.CreateDrugReq) (*model.Drug, error) {
	d := req.ToDrug()
	id, err := s.repo.NextDrugID(ctx)
	if err != nil {
		return nil, err
	}
	d.DrugID = id

	if err := s.repo.InsertDrug(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyDrugs)
	return d, nil
}

package service

import (
	"context"
	"testing"

	"magicpill/internal/portal/cache"
	"magicpill/internal/portal/model"
	"magicpill/internal/portal/repository"
	"magicpill/internal/portal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func boolPtr(b bool) *bool { return &b }

func TestAddUser(t *testing.T) {
	req := model.AddUserReq{
		Username:    "bob",
		Email:       "bob@x.com",
		FirstName:   "Bob",
		LastName:    "Smith",
		Phone:       "555-0100",
		Address:     "1 Main St",
		DOB:         "1990-01-01",
		CompanyID:   1,
		PlanID:      1,
		IsActive:    boolPtr(true),
		IsDependent: boolPtr(false),
	}

	t.Run("assigns id and inserts", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		svc := NewService(repo, cache.New("", 0))

		repo.On("PlanExists", mock.Anything, 1).Return(true, nil)
		repo.On("CompanyExists", mock.Anything, 1).Return(true, nil)
		repo.On("NextUserID", mock.Anything).Return(8, nil)
		repo.On("InsertUser", mock.Anything, mock.Anything).Return(nil)

		u, err := svc.AddUser(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, 8, u.UserID)
		assert.True(t, u.IsActive)
	})

	t.Run("missing plan blocks insert", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		svc := NewService(repo, cache.New("", 0))

		repo.On("PlanExists", mock.Anything, 1).Return(false, nil)

		_, err := svc.AddUser(context.Background(), req)
		assert.ErrorIs(t, err, ErrPlanNotFound)
		repo.AssertNotCalled(t, "InsertUser", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email surfaces as duplicate", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		svc := NewService(repo, cache.New("", 0))

		repo.On("PlanExists", mock.Anything, 1).Return(true, nil)
		repo.On("CompanyExists", mock.Anything, 1).Return(true, nil)
		repo.On("NextUserID", mock.Anything).Return(9, nil)
		repo.On("InsertUser", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		_, err := svc.AddUser(context.Background(), req)
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestUpdateUserPartial(t *testing.T) {
	repo := new(testutil.MockRepository)
	svc := NewService(repo, cache.New("", 0))

	email := "new@x.com"
	repo.On("UpdateUser", mock.Anything, 5, map[string]interface{}{"email": email}).Return(nil)
	repo.On("GetUserByID", mock.Anything, 5).Return(&model.User{UserID: 5, Email: email}, nil)

	u, err := svc.UpdateUser(context.Background(), 5, model.UpdateUserReq{Email: &email})
	assert.NoError(t, err)
	assert.Equal(t, email, u.Email)
}

func TestToggleUserAlternates(t *testing.T) {
	repo := new(testutil.MockRepository)
	svc := NewService(repo, cache.New("", 0))

	repo.On("GetUserByID", mock.Anything, 5).Return(&model.User{UserID: 5, IsActive: true}, nil).Once()
	repo.On("UpdateUser", mock.Anything, 5, map[string]interface{}{"is_active": false}).Return(nil).Once()
	repo.On("GetUserByID", mock.Anything, 5).Return(&model.User{UserID: 5, IsActive: false}, nil).Once()
	repo.On("UpdateUser", mock.Anything, 5, map[string]interface{}{"is_active": true}).Return(nil).Once()

	first, err := svc.ToggleUser(context.Background(), 5)
	assert.NoError(t, err)
	assert.False(t, first)

	second, err := svc.ToggleUser(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, second)
}

func TestToggleUserNotFound(t *testing.T) {
	repo := new(testutil.MockRepository)
	svc := NewService(repo, cache.New("", 0))

	repo.On("GetUserByID", mock.Anything, 99).Return(nil, repository.ErrNotFound)

	_, err := svc.ToggleUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

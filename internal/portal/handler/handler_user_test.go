package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"magicpill/internal/portal/cache"
	"magicpill/internal/portal/config"
	"magicpill/internal/portal/handler"
	"magicpill/internal/portal/model"
	"magicpill/internal/portal/repository"
	"magicpill/internal/portal/router"
	"magicpill/internal/portal/service"
	"magicpill/internal/portal/testutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupServer(repo *testutil.MockRepository) *echo.Echo {
	e := echo.New()
	svc := service.NewService(repo, cache.New("", 0))
	h := handler.NewPortalHandler(svc)
	router.RegisterRoutes(e, h, &config.Config{CORSOrigins: []string{"*"}})
	return e
}

func decodeBatchResponse(t *testing.T, raw []byte) model.BatchResponse {
	t.Helper()
	var resp model.BatchResponse
	assert.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

func validUserBody() map[string]interface{} {
	return map[string]interface{}{
		"username":    "bob",
		"email":       "bob@x.com",
		"firstName":   "Bob",
		"lastName":    "Smith",
		"phone":       "555-0100",
		"address":     "1 Main St",
		"dob":         "1990-01-01",
		"companyId":   1,
		"planId":      1,
		"isActive":    true,
		"isDependent": false,
	}
}

func TestPostUserBulk(t *testing.T) {
	apiPath := "/user/bulk"

	t.Run("valid add operation succeeds", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("WithSession", mock.Anything, mock.Anything).Return(nil)
		repo.On("PlanExists", mock.Anything, 1).Return(true, nil)
		repo.On("CompanyExists", mock.Anything, 1).Return(true, nil)
		repo.On("NextUserID", mock.Anything).Return(1, nil)
		repo.On("BulkInsertUsers", mock.Anything, mock.Anything).Return(nil)

		body := []map[string]interface{}{
			{"action": "add", "user_data": validUserBody()},
		}
		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, body)
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBatchResponse(t, rec.Body.Bytes())
		assert.Len(t, resp.Results, 1)
		assert.True(t, resp.Results[0].Success)
		assert.Equal(t, "User added successfully", resp.Results[0].Message)
	})

	t.Run("toggle returns new state", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("WithSession", mock.Anything, mock.Anything).Return(nil)
		repo.On("GetUserByID", mock.Anything, 5).Return(&model.User{UserID: 5, IsActive: true}, nil)
		repo.On("BulkUpdateUsers", mock.Anything, mock.Anything).Return(nil)

		body := []map[string]interface{}{
			{"action": "toggle", "user_data": map[string]interface{}{"userId": 5}},
		}
		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, body)
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBatchResponse(t, rec.Body.Bytes())
		assert.True(t, resp.Results[0].Success)
		assert.NotNil(t, resp.Results[0].IsActive)
		assert.False(t, *resp.Results[0].IsActive)
	})

	t.Run("update of missing user reports per-item error", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("WithSession", mock.Anything, mock.Anything).Return(nil)
		repo.On("PlanExists", mock.Anything, 1).Return(true, nil)
		repo.On("CompanyExists", mock.Anything, 1).Return(true, nil)
		repo.On("GetUserByID", mock.Anything, 999).Return(nil, repository.ErrNotFound)

		userData := validUserBody()
		userData["userId"] = 999
		body := []map[string]interface{}{
			{"action": "update", "user_data": userData},
		}
		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, body)
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBatchResponse(t, rec.Body.Bytes())
		assert.Equal(t, "User Not Found", resp.Results[0].Error)
		assert.Equal(t, "User with ID 999 not found.", resp.Results[0].Message)
	})

	t.Run("unknown action reports per-item error", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("WithSession", mock.Anything, mock.Anything).Return(nil)

		body := []map[string]interface{}{{"action": "frobnicate"}}
		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, body)
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBatchResponse(t, rec.Body.Bytes())
		assert.Equal(t, "Unknown Action", resp.Results[0].Error)
		assert.Equal(t, "Unknown action received: frobnicate", resp.Results[0].Message)
	})

	t.Run("non-array body rejects whole request", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, map[string]interface{}{"action": "add"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeBatchResponse(t, rec.Body.Bytes())
		assert.Equal(t, "Data should be a list of user operations.", resp.Results[0].Message)
		repo.AssertNotCalled(t, "WithSession", mock.Anything, mock.Anything)
	})
}

func TestPostUserAdd(t *testing.T) {
	t.Run("valid user is created", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("PlanExists", mock.Anything, 1).Return(true, nil)
		repo.On("CompanyExists", mock.Anything, 1).Return(true, nil)
		repo.On("NextUserID", mock.Anything).Return(3, nil)
		repo.On("InsertUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.UserID == 3 && u.Email == "bob@x.com"
		})).Return(nil)

		rec := testutil.PerformRequest(e, http.MethodPost, "/user/add", validUserBody())
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBatchResponse(t, rec.Body.Bytes())
		assert.True(t, resp.Results[0].Success)
		assert.Equal(t, 3, resp.Results[0].User.UserID)
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		body := validUserBody()
		body["email"] = "not-an-email"
		rec := testutil.PerformRequest(e, http.MethodPost, "/user/add", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		repo.AssertNotCalled(t, "InsertUser", mock.Anything, mock.Anything)
	})

	t.Run("missing plan returns 404", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("PlanExists", mock.Anything, 1).Return(false, nil)

		rec := testutil.PerformRequest(e, http.MethodPost, "/user/add", validUserBody())
		assert.Equal(t, http.StatusNotFound, rec.Code)

		resp := decodeBatchResponse(t, rec.Body.Bytes())
		assert.Equal(t, "Magic Pill Plan not found.", resp.Results[0].Message)
	})
}

func TestPostUserToggle(t *testing.T) {
	repo := new(testutil.MockRepository)
	e := setupServer(repo)

	repo.On("GetUserByID", mock.Anything, 5).Return(&model.User{UserID: 5, IsActive: true}, nil)
	repo.On("UpdateUser", mock.Anything, 5, map[string]interface{}{"is_active": false}).Return(nil)

	rec := testutil.PerformRequest(e, http.MethodPost, "/user/toggle/5", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBatchResponse(t, rec.Body.Bytes())
	assert.True(t, resp.Results[0].Success)
	assert.False(t, *resp.Results[0].IsActive)
}

func TestGetUser(t *testing.T) {
	t.Run("existing user with embedded references", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("GetUserByID", mock.Anything, 5).Return(&model.User{UserID: 5, CompanyID: 1, PlanID: 2}, nil)
		repo.On("GetCompanyByID", mock.Anything, 1).Return(&model.InsuranceCompany{CompanyID: 1, Name: "Acme"}, nil)
		repo.On("GetPlanByID", mock.Anything, 2).Return(&model.MagicPillPlan{PlanID: 2, PlanName: "Gold"}, nil)

		rec := testutil.PerformRequest(e, http.MethodGet, "/user/5", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Acme"`)
		assert.Contains(t, rec.Body.String(), `"Gold"`)
	})

	t.Run("missing user returns 404", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("GetUserByID", mock.Anything, 999).Return(nil, repository.ErrNotFound)

		rec := testutil.PerformRequest(e, http.MethodGet, "/user/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		rec := testutil.PerformRequest(e, http.MethodGet, "/user/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

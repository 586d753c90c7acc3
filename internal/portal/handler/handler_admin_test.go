package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"magicpill/internal/portal/model"
	"magicpill/internal/portal/repository"
	"magicpill/internal/portal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetAdmins(t *testing.T) {
	repo := new(testutil.MockRepository)
	e := setupServer(repo)

	repo.On("ListAdmins", mock.Anything).Return([]*model.Admin{
		{AdminID: 1, AdminUsername: "root", AdminEmail: "root@x.com"},
	}, nil)

	rec := testutil.PerformRequest(e, http.MethodGet, "/admins", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var admins []*model.Admin
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &admins))
	assert.Len(t, admins, 1)
	assert.Equal(t, "root", admins[0].AdminUsername)
}

func TestGetAdmin(t *testing.T) {
	t.Run("missing admin returns 404", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("GetAdminByID", mock.Anything, 7).Return(nil, repository.ErrNotFound)

		rec := testutil.PerformRequest(e, http.MethodGet, "/admins/7", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPostAdmin(t *testing.T) {
	t.Run("valid admin is created", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("CompanyExists", mock.Anything, 1).Return(true, nil)
		repo.On("NextAdminID", mock.Anything).Return(2, nil)
		repo.On("InsertAdmin", mock.Anything, mock.MatchedBy(func(a *model.Admin) bool {
			return a.AdminID == 2 && a.AdminEmail == "ops@x.com"
		})).Return(nil)

		body := map[string]interface{}{
			"adminUsername": "ops",
			"adminEmail":    "ops@x.com",
			"companyId":     1,
		}
		rec := testutil.PerformRequest(e, http.MethodPost, "/admins", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("NextAdminID", mock.Anything).Return(3, nil)
		repo.On("InsertAdmin", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		body := map[string]interface{}{
			"adminUsername": "ops",
			"adminEmail":    "ops@x.com",
		}
		rec := testutil.PerformRequest(e, http.MethodPost, "/admins", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		body := map[string]interface{}{
			"adminUsername": "ops",
			"adminEmail":    "nope",
		}
		rec := testutil.PerformRequest(e, http.MethodPost, "/admins", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteAdmin(t *testing.T) {
	repo := new(testutil.MockRepository)
	e := setupServer(repo)

	repo.On("DeleteAdmin", mock.Anything, 7).Return(nil)

	rec := testutil.PerformRequest(e, http.MethodDelete, "/admins/7", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin deleted successfully")
}

func TestGetAdminByEmail(t *testing.T) {
	t.Run("existing admin", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("GetAdminByEmail", mock.Anything, "root@x.com").Return(&model.Admin{
			AdminID: 1, AdminUsername: "root", AdminEmail: "root@x.com", CompanyID: 4,
		}, nil)

		rec := testutil.PerformRequest(e, http.MethodGet, "/admins/email/root@x.com", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var lookup model.AdminLookup
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lookup))
		assert.True(t, lookup.Exists)
		assert.Equal(t, 4, lookup.CompanyID)
	})

	t.Run("unknown admin is 200 with exists false", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("GetAdminByEmail", mock.Anything, "ghost@x.com").Return(nil, repository.ErrNotFound)

		rec := testutil.PerformRequest(e, http.MethodGet, "/admins/email/ghost@x.com", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var lookup model.AdminLookup
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lookup))
		assert.False(t, lookup.Exists)
	})
}

func TestAdminCompanyAssociations(t *testing.T) {
	t.Run("add association", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("CompanyExists", mock.Anything, 1).Return(true, nil)
		repo.On("AddAdminCompany", mock.Anything, 7, 1).Return(nil)

		body := map[string]interface{}{"companyId": 1}
		rec := testutil.PerformRequest(e, http.MethodPost, "/admin/7/add-insurance-company", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("remove association that does not exist", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("CompanyExists", mock.Anything, 1).Return(true, nil)
		repo.On("RemoveAdminCompany", mock.Anything, 7, 1).Return(false, nil)

		body := map[string]interface{}{"companyId": 1}
		rec := testutil.PerformRequest(e, http.MethodPost, "/admin/7/remove-insurance-company", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list associated companies", func(t *testing.T) {
		repo := new(testutil.MockRepository)
		e := setupServer(repo)

		repo.On("GetAdminByID", mock.Anything, 7).Return(&model.Admin{AdminID: 7, CompanyIDs: []int{1, 2}}, nil)
		repo.On("ListCompaniesByIDs", mock.Anything, []int{1, 2}).Return([]*model.InsuranceCompany{
			{CompanyID: 1, Name: "Acme"},
			{CompanyID: 2, Name: "Globex"},
		}, nil)

		rec := testutil.PerformRequest(e, http.MethodGet, "/admin/7/insurance-companies", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Globex")
	})
}

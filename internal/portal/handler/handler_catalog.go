package handler

import (
	"net/http"

	"magicpill/internal/portal/model"

	"github.com/labstack/echo/v4"
)

// GetCompanies handles GET /company.
func (h *PortalHandler) GetCompanies(c echo.Context) error {
	companies, err := h.Service.ListCompanies(c.Request().Context())
	if err != nil {
		code, body := resultsStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"results": companies})
}

// GetCompany handles GET /company/:companyId and returns the company together
// with its enrolled users.
func (h *PortalHandler) GetCompany(c echo.Context) error {
	companyID, err := intParam(c, "companyId")
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			resultsError(model.BatchErrBadRequest, "Invalid company id"))
	}

	result, err := h.Service.GetCompanyWithUsers(c.Request().Context(), companyID)
	if err != nil {
		code, body := resultsStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": []*model.CompanyWithUsers{result},
	})
}

// GetPlans handles GET /plans.
func (h *PortalHandler) GetPlans(c echo.Context) error {
	plans, err := h.Service.ListPlans(c.Request().Context())
	if err != nil {
		code, body := resultsStatus(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"results": plans})
}

// GetDrugs handles GET /drugs.
func (h *PortalHandler) GetDrugs(c echo.Context) error {
	drugs, err := h.Service.ListDrugs(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, drugs)
}

// GetDrug handles GET /drugs/:drugId.
func (h *PortalHandler) GetDrug(c echo.Context) error {
	drugID, err := intParam(c, "drugId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid drug id"},
		})
	}

	d, err := h.Service.GetDrug(c.Request().Context(), drugID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, d)
}

// PostDrug handles POST /drugs.
func (h *PortalHandler) PostDrug(c echo.Context) error {
	var req model.CreateDrugReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	d, err := h.Service.CreateDrug(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, d)
}

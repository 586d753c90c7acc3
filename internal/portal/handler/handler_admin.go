package handler

import (
	"net/http"

	"magicpill/internal/portal/model"

	"github.com/labstack/echo/v4"
)

// GetAdmins handles GET /admins.
func (h *PortalHandler) GetAdmins(c echo.Context) error {
	admins, err := h.Service.ListAdmins(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, admins)
}

// GetAdmin handles GET /admins/:adminId.
func (h *PortalHandler) GetAdmin(c echo.Context) error {
	adminID, err := intParam(c, "adminId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid admin id"},
		})
	}

	admin, err := h.Service.GetAdmin(c.Request().Context(), adminID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, admin)
}

// PostAdmin handles POST /admins.
func (h *PortalHandler) PostAdmin(c echo.Context) error {
	var req model.CreateAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	admin, err := h.Service.CreateAdmin(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, admin)
}

// PutAdmin handles PUT /admins/:adminId.
func (h *PortalHandler) PutAdmin(c echo.Context) error {
	adminID, err := intParam(c, "adminId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid admin id"},
		})
	}

	var req model.UpdateAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	admin, err := h.Service.UpdateAdmin(c.Request().Context(), adminID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, admin)
}

// DeleteAdmin handles DELETE /admins/:adminId.
func (h *PortalHandler) DeleteAdmin(c echo.Context) error {
	adminID, err := intParam(c, "adminId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid admin id"},
		})
	}

	if err := h.Service.DeleteAdmin(c.Request().Context(), adminID); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Admin deleted successfully"})
}

// GetAdminByEmail handles GET /admins/email/:email. It is an existence probe,
// so an unknown email is a 200 with exists=false, not a 404.
func (h *PortalHandler) GetAdminByEmail(c echo.Context) error {
	lookup, err := h.Service.LookupAdminByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, lookup)
}

// GetAdminCompanies handles GET /admin/:adminId/insurance-companies.
func (h *PortalHandler) GetAdminCompanies(c echo.Context) error {
	adminID, err := intParam(c, "adminId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid admin id"},
		})
	}

	companies, err := h.Service.ListAdminCompanies(c.Request().Context(), adminID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, companies)
}

// PostAdminAddCompany handles POST /admin/:adminId/add-insurance-company.
func (h *PortalHandler) PostAdminAddCompany(c echo.Context) error {
	adminID, err := intParam(c, "adminId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid admin id"},
		})
	}

	var req model.AdminCompanyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.AddAdminCompany(c.Request().Context(), adminID, req.CompanyID); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, map[string]string{"success": "Insurance company added to admin"})
}

// PostAdminRemoveCompany handles POST /admin/:adminId/remove-insurance-company.
func (h *PortalHandler) PostAdminRemoveCompany(c echo.Context) error {
	adminID, err := intParam(c, "adminId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid admin id"},
		})
	}

	var req model.AdminCompanyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.RemoveAdminCompany(c.Request().Context(), adminID, req.CompanyID); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "Insurance company removed from admin"})
}

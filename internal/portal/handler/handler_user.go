package handler

import (
	"net/http"

	"magicpill/internal/portal/model"

	"github.com/labstack/echo/v4"
)

// PostUserBulk handles POST /user/bulk. The body must be a JSON array of
// tagged operations; anything else rejects the whole request. Per-operation
// failures land in the results array, one entry per input in input order.
func (h *PortalHandler) PostUserBulk(c echo.Context) error {
	var ops []model.BatchOperation
	if err := c.Bind(&ops); err != nil {
		return c.JSON(http.StatusBadRequest,
			resultsError(model.BatchErrBadRequest, "Data should be a list of user operations."))
	}

	results := h.Service.ProcessUserBatch(c.Request().Context(), ops)
	return c.JSON(http.StatusOK, model.BatchResponse{Results: results})
}

// PostUserAdd handles POST /user/add.
func (h *PortalHandler) PostUserAdd(c echo.Context) error {
	var req model.AddUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			resultsError(model.BatchErrBadRequest, "Invalid body"))
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest,
			resultsError(model.BatchErrBadRequest, err.Error()))
	}

	u, err := h.Service.AddUser(c.Request().Context(), req)
	if err != nil {
		code, body := resultsStatus(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.BatchResponse{
		Results: []model.BatchResult{{
			Success: true,
			Message: "User added successfully",
			User:    u,
		}},
	})
}

// PostUserUpdate handles POST /user/update/:userId.
func (h *PortalHandler) PostUserUpdate(c echo.Context) error {
	userID, err := intParam(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			resultsError(model.BatchErrBadRequest, "Invalid user id"))
	}

	var req model.UpdateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			resultsError(model.BatchErrBadRequest, "Invalid body"))
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest,
			resultsError(model.BatchErrBadRequest, err.Error()))
	}

	u, err := h.Service.UpdateUser(c.Request().Context(), userID, req)
	if err != nil {
		code, body := resultsStatus(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.BatchResponse{
		Results: []model.BatchResult{{
			Success: true,
			Message: "User updated successfully",
			User:    u,
		}},
	})
}

// PostUserToggle handles POST /user/toggle/:userId.
func (h *PortalHandler) PostUserToggle(c echo.Context) error {
	userID, err := intParam(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			resultsError(model.BatchErrBadRequest, "Invalid user id"))
	}

	active, err := h.Service.ToggleUser(c.Request().Context(), userID)
	if err != nil {
		code, body := resultsStatus(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.BatchResponse{
		Results: []model.BatchResult{{
			Success:  true,
			Message:  "User status toggled successfully",
			IsActive: &active,
		}},
	})
}

// GetUser handles GET /user/:userId.
func (h *PortalHandler) GetUser(c echo.Context) error {
	userID, err := intParam(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			resultsError(model.BatchErrBadRequest, "Invalid user id"))
	}

	detail, err := h.Service.GetUser(c.Request().Context(), userID)
	if err != nil {
		code, body := resultsStatus(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": []*model.UserDetail{detail},
	})
}

package handler

import (
	"net/http"
	"strconv"

	"magicpill/internal/portal/service"

	"github.com/labstack/echo/v4"
)

type PortalHandler struct {
	Service service.PortalService
}

func NewPortalHandler(s service.PortalService) *PortalHandler {
	return &PortalHandler{Service: s}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// intParam parses a numeric path parameter.
func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, err
	}
	return v, nil
}

package router

import (
	"magicpill/internal/portal/config"
	"magicpill/internal/portal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.PortalHandler, cfg *config.Config) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.Use(handler.RequestIDMiddleware)

	// Health Check
	e.GET("/health", handler.HealthCheck)

	// User routes; /user/bulk is the batch operation endpoint.
	e.POST("/user/bulk", h.PostUserBulk)
	e.POST("/user/add", h.PostUserAdd)
	e.POST("/user/update/:userId", h.PostUserUpdate)
	e.POST("/user/toggle/:userId", h.PostUserToggle)
	e.GET("/user/:userId", h.GetUser)

	// Company routes
	e.GET("/company", h.GetCompanies)
	e.GET("/company/:companyId", h.GetCompany)

	// Plan routes
	e.GET("/plans", h.GetPlans)

	// Admin routes
	e.GET("/admins", h.GetAdmins)
	e.POST("/admins", h.PostAdmin)
	e.GET("/admins/email/:email", h.GetAdminByEmail)
	e.GET("/admins/:adminId", h.GetAdmin)
	e.PUT("/admins/:adminId", h.PutAdmin)
	e.DELETE("/admins/:adminId", h.DeleteAdmin)
	e.GET("/admin/:adminId/insurance-companies", h.GetAdminCompanies)
	e.POST("/admin/:adminId/add-insurance-company", h.PostAdminAddCompany)
	e.POST("/admin/:adminId/remove-insurance-company", h.PostAdminRemoveCompany)

	// Drug formulary routes
	e.GET("/drugs", h.GetDrugs)
	e.GET("/drugs/:drugId", h.GetDrug)
	e.POST("/drugs", h.PostDrug)
}

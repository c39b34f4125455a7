package router

import (
	"github.com/gin-gonic/gin"

	"orgdesk.app/server/internal/http/handler"
	"orgdesk.app/server/internal/http/middleware"
	"orgdesk.app/server/internal/service"
	"orgdesk.app/server/internal/web"
)

type RouterConfig struct {
	IsProduction bool
}

// SetupRoutes wires the full HTTP surface. Paths are part of the external
// contract and must not change.
func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.SetHTMLTemplate(web.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction)
	registerHandler := handler.NewRegisterHandler(services.Registration())
	orgHandler := handler.NewOrganizationHandler(services.Organizations())
	pageHandler := handler.NewPageHandler()

	// Public routes
	router.GET("/", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/register", registerHandler.RegisterPage)
	router.POST("/register", registerHandler.Register)
	router.GET("/logout", authHandler.Logout)

	// Everything below requires a live session
	authed := router.Group("", middleware.RequireAuth(authService))
	{
		authed.GET("/manager_dashboard", pageHandler.Dashboard)
		authed.GET("/schedule_employee", pageHandler.ScheduleEmployee)
		authed.GET("/view_requests", pageHandler.ViewRequests)

		authed.GET("/add_employee", orgHandler.AddEmployeePage)
		authed.POST("/add_employee", orgHandler.AddEmployee)
		authed.GET("/view_employee", orgHandler.ViewEmployees)

		authed.GET("/create_org", orgHandler.CreateOrgPage)
		authed.POST("/create_org", orgHandler.CreateOrg)
	}
}

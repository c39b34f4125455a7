package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orgdesk.app/server/internal/http/flash"
	"orgdesk.app/server/internal/http/middleware"
)

// PageHandler serves the authenticated pages that carry no form logic.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())

	firstName := ""
	if user != nil {
		firstName = user.FirstName
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"FirstName": firstName,
		"Messages":  flash.Take(c),
	})
}

func (h *PageHandler) ScheduleEmployee(c *gin.Context) {
	c.HTML(http.StatusOK, "schedule_employee.html", gin.H{})
}

func (h *PageHandler) ViewRequests(c *gin.Context) {
	c.HTML(http.StatusOK, "view_requests.html", gin.H{})
}

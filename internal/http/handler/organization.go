package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"orgdesk.app/server/internal/http/flash"
	"orgdesk.app/server/internal/http/middleware"
	"orgdesk.app/server/internal/model"
	"orgdesk.app/server/internal/service"
)

type OrganizationHandler struct {
	orgService service.OrganizationService
}

func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) CreateOrgPage(c *gin.Context) {
	c.HTML(http.StatusOK, "create_org.html", gin.H{
		"Messages": flash.Take(c),
	})
}

// CreateOrg forms a new organization with the caller as its sole admin.
func (h *OrganizationHandler) CreateOrg(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	name := c.PostForm("organization_name")

	_, err := h.orgService.Create(ctx, user.ID, name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName):
			flash.Add(c, flash.KindError, "Organization name cannot be empty.")
		case errors.Is(err, service.ErrAlreadyInOrganization):
			flash.Add(c, flash.KindError, "You are already a member of an organization.")
		case errors.Is(err, service.ErrNameTaken):
			flash.Add(c, flash.KindError, "An organization with that name already exists.")
		default:
			slog.ErrorContext(ctx, "failed to create organization", "error", err)
			flash.Add(c, flash.KindError, "There was an error while processing your request.")
		}
		c.Redirect(http.StatusFound, "/create_org")
		return
	}

	flash.Add(c, flash.KindSuccess, "Organization created successfully!")
	c.Redirect(http.StatusFound, "/create_org")
}

func (h *OrganizationHandler) AddEmployeePage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_employee.html", gin.H{
		"Messages": flash.Take(c),
	})
}

// AddEmployee attaches an existing user to the caller's organization.
// Only organization admins may call it.
func (h *OrganizationHandler) AddEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	email := c.PostForm("email")
	makeAdmin := c.PostForm("make_admin") == "on"

	addedEmail, err := h.orgService.AddEmployee(ctx, user.ID, email, makeAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAdmin):
			flash.Add(c, flash.KindError, "You must be an admin to add employees to an organization.")
		case errors.Is(err, service.ErrEmployeeNotFound):
			flash.Add(c, flash.KindError, "No user found with this email.")
		case errors.Is(err, service.ErrAlreadyInOrganization):
			flash.Add(c, flash.KindError, "This user is already in an organization.")
		default:
			slog.ErrorContext(ctx, "failed to add employee", "error", err)
			flash.Add(c, flash.KindError, "An error occurred while adding the user to the organization.")
		}
		c.Redirect(http.StatusFound, "/add_employee")
		return
	}

	flash.Add(c, flash.KindSuccess, fmt.Sprintf("User with email %s has been added to the organization.", addedEmail))
	c.Redirect(http.StatusFound, "/add_employee")
}

// ViewEmployees lists everyone in the caller's organization. A caller with
// no organization still gets a page, just an empty one; so does a caller
// whose listing failed.
func (h *OrganizationHandler) ViewEmployees(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	list, err := h.orgService.ListEmployees(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list employees", "error", err)
		flash.Add(c, flash.KindError, "An error occurred while fetching employees.")
		c.HTML(http.StatusOK, "view_employee.html", gin.H{
			"Employees": []model.Employee{},
			"Messages":  flash.Take(c),
		})
		return
	}

	if !list.HasOrganization {
		flash.Add(c, flash.KindError, "You are not assigned to any organization.")
	} else if len(list.Employees) == 0 {
		flash.Add(c, flash.KindInfo, "No employees found in your organization.")
	}

	c.HTML(http.StatusOK, "view_employee.html", gin.H{
		"Employees": list.Employees,
		"Messages":  flash.Take(c),
	})
}

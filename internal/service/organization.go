package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"orgdesk.app/server/common/id"
	"orgdesk.app/server/internal/model"
	"orgdesk.app/server/internal/store"
)

var (
	ErrEmptyName             = errors.New("organization name cannot be empty")
	ErrNameTaken             = errors.New("organization name already exists")
	ErrAlreadyInOrganization = errors.New("user is already in an organization")
	ErrNotAdmin              = errors.New("caller is not an organization admin")
	ErrEmployeeNotFound      = errors.New("no user found with this email")
)

type EmployeeList struct {
	Employees       []model.Employee
	HasOrganization bool
}

type OrganizationService interface {
	// Create forms a new organization and makes the caller its sole admin.
	// The insert and the caller's membership update commit atomically.
	Create(ctx context.Context, callerID int64, name string) (*model.Organization, error)

	// AddEmployee attaches the user with the given email to the caller's
	// organization. Returns the added user's email for confirmation.
	AddEmployee(ctx context.Context, callerID int64, email string, makeAdmin bool) (string, error)

	// ListEmployees returns everyone in the caller's organization. A caller
	// without an organization gets an empty list, not an error.
	ListEmployees(ctx context.Context, callerID int64) (*EmployeeList, error)
}

type organizationService struct {
	tx        TxRunner
	userStore store.UserStore
}

func NewOrganizationService(tx TxRunner, userStore store.UserStore) OrganizationService {
	return &organizationService{tx: tx, userStore: userStore}
}

func (s *organizationService) Create(ctx context.Context, callerID int64, name string) (*model.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	var created *model.Organization

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		users := stores.Users()
		orgs := stores.Organizations()

		caller, err := users.GetByID(ctx, callerID)
		if err != nil {
			return fmt.Errorf("getting caller: %w", err)
		}
		if caller.OrganizationID != nil {
			return ErrAlreadyInOrganization
		}

		// Fast path; the unique index on organizations.name settles races.
		if _, err := orgs.GetByName(ctx, name); err == nil {
			return ErrNameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking name availability: %w", err)
		}

		org := &model.Organization{
			ID:   id.New(),
			Name: name,
		}
		if err := orgs.Create(ctx, org); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return ErrNameTaken
			}
			return fmt.Errorf("creating organization: %w", err)
		}

		if err := users.SetOrganization(ctx, callerID, org.ID, org.Name, true); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrAlreadyInOrganization
			}
			return fmt.Errorf("assigning admin: %w", err)
		}

		created = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization created",
		"organization_id", created.ID,
		"name", created.Name,
		"admin_user_id", callerID,
	)

	return created, nil
}

func (s *organizationService) AddEmployee(ctx context.Context, callerID int64, email string, makeAdmin bool) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var addedEmail string

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		users := stores.Users()

		caller, err := users.GetByID(ctx, callerID)
		if err != nil {
			return fmt.Errorf("getting caller: %w", err)
		}
		if !caller.OrganizationAdmin || caller.OrganizationID == nil {
			return ErrNotAdmin
		}

		target, err := users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("getting target user: %w", err)
		}

		if target.OrganizationID != nil {
			return ErrAlreadyInOrganization
		}

		orgName := ""
		if caller.OrganizationName != nil {
			orgName = *caller.OrganizationName
		}

		if err := users.SetOrganization(ctx, target.ID, *caller.OrganizationID, orgName, makeAdmin); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrAlreadyInOrganization
			}
			return fmt.Errorf("adding employee: %w", err)
		}

		addedEmail = target.Email
		return nil
	})
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "employee added",
		"employee_email", addedEmail,
		"admin_user_id", callerID,
		"make_admin", makeAdmin,
	)

	return addedEmail, nil
}

func (s *organizationService) ListEmployees(ctx context.Context, callerID int64) (*EmployeeList, error) {
	caller, err := s.userStore.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("getting caller: %w", err)
	}

	if caller.OrganizationID == nil {
		return &EmployeeList{Employees: []model.Employee{}, HasOrganization: false}, nil
	}

	employees, err := s.userStore.ListByOrganization(ctx, *caller.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}

	return &EmployeeList{Employees: employees, HasOrganization: true}, nil
}

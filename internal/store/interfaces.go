package store

import (
	"context"
	"errors"

	"orgdesk.app/server/internal/model"
)

var ErrNotFound = errors.New("not found")

// ErrDuplicate reports a store-level unique constraint violation. The
// constraints on users.email and organizations.name are the authoritative
// uniqueness guarantee; application-level pre-checks are early exits only.
var ErrDuplicate = errors.New("duplicate key")

// ErrConflict reports a conditional write that matched no rows: the row is
// gone or its state changed under the caller since it was read.
var ErrConflict = errors.New("conflicting update")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	// SetOrganization assigns a user to an organization. It matches only
	// users with no organization, so a concurrent assignment surfaces as
	// ErrConflict instead of being overwritten.
	SetOrganization(ctx context.Context, userID int64, orgID int64, orgName string, admin bool) error
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Employee, error)
}

type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetByName(ctx context.Context, name string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
}

type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}

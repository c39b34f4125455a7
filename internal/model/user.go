package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Organization membership. OrganizationAdmin is true only when
	// OrganizationID is set; the schema enforces this.
	OrganizationID    *int64  `json:"organization_id,omitempty"`
	OrganizationName  *string `json:"organization,omitempty"`
	OrganizationAdmin bool    `json:"organization_admin"`
}

// Employee is the projection of a user exposed on the employee list.
// Never carries the password hash or internal IDs.
type Employee struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

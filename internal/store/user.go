package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"orgdesk.app/server/core/db"
	"orgdesk.app/server/internal/model"
)

type userStore struct {
	q db.Querier
}

func newUserStore(q db.Querier) UserStore {
	return &userStore{q: q}
}

const userColumns = `id, first_name, last_name, email, password_hash,
	organization_id, organization_name, organization_admin, created_at, updated_at`

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := s.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
	)
	created, err := scanUser(row)
	if err != nil {
		return mapWriteError(err)
	}
	*user = *created
	return nil
}

func (s *userStore) SetOrganization(ctx context.Context, userID int64, orgID int64, orgName string, admin bool) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE users
		SET organization_id = $2, organization_name = $3, organization_admin = $4, updated_at = now()
		WHERE id = $1 AND organization_id IS NULL`,
		userID, orgID, orgName, admin,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

func (s *userStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Employee, error) {
	rows, err := s.q.Query(ctx, `
		SELECT first_name, last_name, email
		FROM users
		WHERE organization_id = $1
		ORDER BY last_name, first_name`,
		orgID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.FirstName, &e.LastName, &e.Email); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.OrganizationID, &u.OrganizationName, &u.OrganizationAdmin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

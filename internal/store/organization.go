package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"orgdesk.app/server/core/db"
	"orgdesk.app/server/internal/model"
)

type organizationStore struct {
	q db.Querier
}

func newOrganizationStore(q db.Querier) OrganizationStore {
	return &organizationStore{q: q}
}

func (s *organizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	row := s.q.QueryRow(ctx, `SELECT id, name, created_at FROM organizations WHERE id = $1`, id)
	return scanOrganization(row)
}

func (s *organizationStore) GetByName(ctx context.Context, name string) (*model.Organization, error) {
	row := s.q.QueryRow(ctx, `SELECT id, name, created_at FROM organizations WHERE name = $1`, name)
	return scanOrganization(row)
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO organizations (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at`,
		org.ID, org.Name,
	)
	created, err := scanOrganization(row)
	if err != nil {
		return mapWriteError(err)
	}
	*org = *created
	return nil
}

func scanOrganization(row pgx.Row) (*model.Organization, error) {
	var o model.Organization
	if err := row.Scan(&o.ID, &o.Name, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

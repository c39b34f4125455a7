package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"orgdesk.app/server/core/db"
)

// Stores bundles the per-entity stores over a single querier, which may be
// the pool or a transaction.
type Stores struct {
	q db.Querier
}

func NewStores(q db.Querier) *Stores {
	return &Stores{q: q}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.q)
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.q)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.q)
}

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

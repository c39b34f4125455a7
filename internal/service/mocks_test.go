package service_test

import (
	"context"

	"orgdesk.app/server/internal/model"
	"orgdesk.app/server/internal/service"
	"orgdesk.app/server/internal/store"
)

type mockUserStore struct {
	getByIDFn            func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn         func(ctx context.Context, email string) (*model.User, error)
	createFn             func(ctx context.Context, user *model.User) error
	setOrganizationFn    func(ctx context.Context, userID, orgID int64, orgName string, admin bool) error
	listByOrganizationFn func(ctx context.Context, orgID int64) ([]model.Employee, error)

	createCalls          int
	setOrganizationCalls int
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) SetOrganization(ctx context.Context, userID, orgID int64, orgName string, admin bool) error {
	m.setOrganizationCalls++
	if m.setOrganizationFn != nil {
		return m.setOrganizationFn(ctx, userID, orgID, orgName, admin)
	}
	return nil
}

func (m *mockUserStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Employee, error) {
	if m.listByOrganizationFn != nil {
		return m.listByOrganizationFn(ctx, orgID)
	}
	return []model.Employee{}, nil
}

type mockOrganizationStore struct {
	getByIDFn   func(ctx context.Context, id int64) (*model.Organization, error)
	getByNameFn func(ctx context.Context, name string) (*model.Organization, error)
	createFn    func(ctx context.Context, org *model.Organization) error

	createCalls int
}

func (m *mockOrganizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) GetByName(ctx context.Context, name string) (*model.Organization, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) Create(ctx context.Context, org *model.Organization) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, org)
	}
	return nil
}

type mockSessionStore struct {
	getValidFn      func(ctx context.Context, id int64) (*model.Session, error)
	createFn        func(ctx context.Context, session *model.Session) error
	deleteFn        func(ctx context.Context, id int64) error
	deleteByUserFn  func(ctx context.Context, userID int64) error
	deleteExpiredFn func(ctx context.Context) error

	deleteCalls int
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

type mockStoreProvider struct {
	users *mockUserStore
	orgs  *mockOrganizationStore
}

func (m *mockStoreProvider) Users() store.UserStore {
	return m.users
}

func (m *mockStoreProvider) Organizations() store.OrganizationStore {
	return m.orgs
}

type mockTxRunner struct {
	provider *mockStoreProvider
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(m.provider)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

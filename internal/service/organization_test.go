package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"orgdesk.app/server/common/id"
	"orgdesk.app/server/internal/model"
	"orgdesk.app/server/internal/service"
	"orgdesk.app/server/internal/store"
)

var _ = Describe("OrganizationService", func() {
	var (
		ctx       context.Context
		userStore *mockUserStore
		orgStore  *mockOrganizationStore
		txRunner  *mockTxRunner
		orgSvc    service.OrganizationService
	)

	BeforeEach(func() {
		ctx = context.Background()
		id.Init(1)
		userStore = &mockUserStore{}
		orgStore = &mockOrganizationStore{}
		txRunner = &mockTxRunner{provider: &mockStoreProvider{users: userStore, orgs: orgStore}}
		orgSvc = service.NewOrganizationService(txRunner, userStore)
	})

	Describe("Create", func() {
		BeforeEach(func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, Email: "jane@example.com"}, nil
			}
		})

		It("creates the organization and makes the caller its admin in one transaction", func() {
			var assignedOrgID int64
			var assignedAdmin bool
			userStore.setOrganizationFn = func(ctx context.Context, userID, orgID int64, orgName string, admin bool) error {
				Expect(userID).To(Equal(int64(42)))
				Expect(orgName).To(Equal("Acme"))
				assignedOrgID = orgID
				assignedAdmin = admin
				return nil
			}

			org, err := orgSvc.Create(ctx, 42, "Acme")
			Expect(err).NotTo(HaveOccurred())
			Expect(org.Name).To(Equal("Acme"))
			Expect(org.ID).To(Equal(assignedOrgID))
			Expect(assignedAdmin).To(BeTrue())
			Expect(orgStore.createCalls).To(Equal(1))
		})

		It("trims the name before any check", func() {
			org, err := orgSvc.Create(ctx, 42, "  Acme  ")
			Expect(err).NotTo(HaveOccurred())
			Expect(org.Name).To(Equal("Acme"))
		})

		It("rejects a blank name", func() {
			_, err := orgSvc.Create(ctx, 42, "   ")
			Expect(err).To(MatchError(service.ErrEmptyName))
			Expect(orgStore.createCalls).To(BeZero())
		})

		It("rejects a caller who already belongs to an organization", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, OrganizationID: int64Ptr(9)}, nil
			}

			_, err := orgSvc.Create(ctx, 42, "Acme")
			Expect(err).To(MatchError(service.ErrAlreadyInOrganization))
			Expect(orgStore.createCalls).To(BeZero())
			Expect(userStore.setOrganizationCalls).To(BeZero())
		})

		It("rejects a name that is already taken", func() {
			orgStore.getByNameFn = func(ctx context.Context, name string) (*model.Organization, error) {
				return &model.Organization{ID: 1, Name: name}, nil
			}

			_, err := orgSvc.Create(ctx, 42, "Acme")
			Expect(err).To(MatchError(service.ErrNameTaken))
			Expect(orgStore.createCalls).To(BeZero())
		})

		It("maps a duplicate insert from a racing creator to ErrNameTaken", func() {
			orgStore.createFn = func(ctx context.Context, org *model.Organization) error {
				return store.ErrDuplicate
			}

			_, err := orgSvc.Create(ctx, 42, "Acme")
			Expect(err).To(MatchError(service.ErrNameTaken))
			Expect(userStore.setOrganizationCalls).To(BeZero())
		})

		It("maps a caller assigned elsewhere mid-flight to ErrAlreadyInOrganization", func() {
			userStore.setOrganizationFn = func(ctx context.Context, userID, orgID int64, orgName string, admin bool) error {
				return store.ErrConflict
			}

			_, err := orgSvc.Create(ctx, 42, "Acme")
			Expect(err).To(MatchError(service.ErrAlreadyInOrganization))
		})

		It("fails the whole operation when the admin assignment fails", func() {
			boom := errors.New("connection reset")
			userStore.setOrganizationFn = func(ctx context.Context, userID, orgID int64, orgName string, admin bool) error {
				return boom
			}

			_, err := orgSvc.Create(ctx, 42, "Acme")
			Expect(err).To(MatchError(boom))
		})
	})

	Describe("AddEmployee", func() {
		admin := func() *model.User {
			return &model.User{
				ID:                42,
				OrganizationID:    int64Ptr(9),
				OrganizationName:  strPtr("Acme"),
				OrganizationAdmin: true,
			}
		}

		It("attaches the target user to the caller's organization", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return admin(), nil
			}
			userStore.getByEmailFn = func(ctx context.Context, email string) (*model.User, error) {
				Expect(email).To(Equal("bob@example.com"))
				return &model.User{ID: 7, Email: "bob@example.com"}, nil
			}
			userStore.setOrganizationFn = func(ctx context.Context, userID, orgID int64, orgName string, makeAdmin bool) error {
				Expect(userID).To(Equal(int64(7)))
				Expect(orgID).To(Equal(int64(9)))
				Expect(orgName).To(Equal("Acme"))
				Expect(makeAdmin).To(BeFalse())
				return nil
			}

			email, err := orgSvc.AddEmployee(ctx, 42, " Bob@Example.com ", false)
			Expect(err).NotTo(HaveOccurred())
			Expect(email).To(Equal("bob@example.com"))
			Expect(userStore.setOrganizationCalls).To(Equal(1))
		})

		It("can grant admin to the new employee", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return admin(), nil
			}
			userStore.getByEmailFn = func(ctx context.Context, email string) (*model.User, error) {
				return &model.User{ID: 7, Email: email}, nil
			}
			var grantedAdmin bool
			userStore.setOrganizationFn = func(ctx context.Context, userID, orgID int64, orgName string, makeAdmin bool) error {
				grantedAdmin = makeAdmin
				return nil
			}

			_, err := orgSvc.AddEmployee(ctx, 42, "bob@example.com", true)
			Expect(err).NotTo(HaveOccurred())
			Expect(grantedAdmin).To(BeTrue())
		})

		It("rejects a caller who is not an admin without touching anything", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, OrganizationID: int64Ptr(9)}, nil
			}

			_, err := orgSvc.AddEmployee(ctx, 42, "bob@example.com", false)
			Expect(err).To(MatchError(service.ErrNotAdmin))
			Expect(userStore.setOrganizationCalls).To(BeZero())
		})

		It("rejects an admin flag without an organization", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, OrganizationAdmin: true}, nil
			}

			_, err := orgSvc.AddEmployee(ctx, 42, "bob@example.com", false)
			Expect(err).To(MatchError(service.ErrNotAdmin))
		})

		It("returns ErrEmployeeNotFound for an unknown email", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return admin(), nil
			}
			userStore.getByEmailFn = func(ctx context.Context, email string) (*model.User, error) {
				return nil, store.ErrNotFound
			}

			_, err := orgSvc.AddEmployee(ctx, 42, "nobody@example.com", false)
			Expect(err).To(MatchError(service.ErrEmployeeNotFound))
		})

		It("maps a target grabbed by a racing admin to ErrAlreadyInOrganization", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return admin(), nil
			}
			userStore.getByEmailFn = func(ctx context.Context, email string) (*model.User, error) {
				return &model.User{ID: 7, Email: email}, nil
			}
			userStore.setOrganizationFn = func(ctx context.Context, userID, orgID int64, orgName string, makeAdmin bool) error {
				return store.ErrConflict
			}

			_, err := orgSvc.AddEmployee(ctx, 42, "bob@example.com", false)
			Expect(err).To(MatchError(service.ErrAlreadyInOrganization))
		})

		It("rejects a target who already belongs to an organization", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return admin(), nil
			}
			userStore.getByEmailFn = func(ctx context.Context, email string) (*model.User, error) {
				return &model.User{ID: 7, Email: email, OrganizationID: int64Ptr(5)}, nil
			}

			_, err := orgSvc.AddEmployee(ctx, 42, "bob@example.com", false)
			Expect(err).To(MatchError(service.ErrAlreadyInOrganization))
			Expect(userStore.setOrganizationCalls).To(BeZero())
		})
	})

	Describe("ListEmployees", func() {
		It("returns the organization's members", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, OrganizationID: int64Ptr(9)}, nil
			}
			userStore.listByOrganizationFn = func(ctx context.Context, orgID int64) ([]model.Employee, error) {
				Expect(orgID).To(Equal(int64(9)))
				return []model.Employee{
					{FirstName: "Bob", LastName: "Ames", Email: "bob@example.com"},
					{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
				}, nil
			}

			list, err := orgSvc.ListEmployees(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.HasOrganization).To(BeTrue())
			Expect(list.Employees).To(HaveLen(2))
		})

		It("reports a caller without an organization instead of failing", func() {
			userStore.getByIDFn = func(ctx context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID}, nil
			}

			list, err := orgSvc.ListEmployees(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.HasOrganization).To(BeFalse())
			Expect(list.Employees).To(BeEmpty())
		})
	})
})

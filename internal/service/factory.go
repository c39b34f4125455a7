package service

import (
	"orgdesk.app/server/internal/store"
)

type Services struct {
	stores        *store.Stores
	txRunner      TxRunner
	sessionSecret []byte
}

func NewServices(stores *store.Stores, txRunner TxRunner, sessionSecret []byte) *Services {
	return &Services{
		stores:        stores,
		txRunner:      txRunner,
		sessionSecret: sessionSecret,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.sessionSecret)
}

func (s *Services) Registration() RegistrationService {
	return NewRegistrationService(s.stores.Users())
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.txRunner, s.stores.Users())
}

package api

import (
	"crypto/subtle"
	"errors"

	"github.com/Favorjs/e-rights-backend/utils/env"
)

// AdminSecretHeader carries the shared secret for back office routes.
const AdminSecretHeader = "X-Admin-Secret"

type Authenticator interface {
	AuthenticateAdmin(Context) error
}

type authenticator struct {
	Authenticator
}

func NewAuthenticator() Authenticator {
	return &authenticator{}
}

func (a *authenticator) AuthenticateAdmin(ctx Context) error {
	secret := env.GetVar("ADMIN_SECRET")
	if secret == "" {
		return errors.New("admin access is not configured")
	}

	supplied := ctx.Request().Header.Get(AdminSecretHeader)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
		return errors.New("invalid admin credentials")
	}

	return nil
}

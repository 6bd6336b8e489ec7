package shell

import (
	"github.com/google/uuid"

	"github.com/gemshelf/gemshelf/internal/store"
)

// Session is the authenticated identity passed to every page handler. The
// ID is an opaque token minted at login, used only for log correlation.
type Session struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// newSession mints a session for an authenticated account.
func newSession(acct store.Account) Session {
	return Session{
		ID:    uuid.New(),
		Email: acct.Email,
		Name:  acct.Name,
	}
}

package store

import "golang.org/x/text/unicode/norm"

// Account is a registered user. Accounts are created at registration and
// never mutated or deleted for the lifetime of the process.
type Account struct {
	Email    string
	Name     string
	Password string
}

// Accounts stores registered accounts keyed by email.
type Accounts struct {
	byEmail map[string]Account
}

// NewAccounts creates an empty account store.
func NewAccounts() *Accounts {
	return &Accounts{byEmail: make(map[string]Account)}
}

// Register stores a new account. Returns a DuplicateEmailError if the email
// is already registered; the store is left unchanged in that case.
func (a *Accounts) Register(name, email, password string) error {
	if _, taken := a.byEmail[email]; taken {
		return &DuplicateEmailError{Email: email}
	}
	a.byEmail[email] = Account{
		Email:    email,
		Name:     norm.NFC.String(name),
		Password: password,
	}
	return nil
}

// Exists reports whether an account is registered under email.
func (a *Accounts) Exists(email string) bool {
	_, ok := a.byEmail[email]
	return ok
}

// Authenticate returns the account for email if the password matches
// exactly (case-sensitive). The boolean reports success; on failure the
// zero Account is returned and no state changes.
func (a *Accounts) Authenticate(email, password string) (Account, bool) {
	acct, ok := a.byEmail[email]
	if !ok || acct.Password != password {
		return Account{}, false
	}
	return acct, true
}

// Len returns the number of registered accounts.
func (a *Accounts) Len() int { return len(a.byEmail) }

package models

// Credentials is the login pair for a Reverso account. It is required only
// for the operations that read user-owned data (favorites, search history);
// anonymous lookups never use it.
type Credentials struct {
	// Email is the address the Reverso account was registered with.
	Email string

	// Password is the account password. It is sent once to the Reverso
	// login form over HTTPS and is never logged or persisted locally.
	Password string
}

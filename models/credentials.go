package models

// Credentials carries a username/password pair submitted on the register
// and login forms. The password only ever exists in memory; persistence
// stores a bcrypt hash.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

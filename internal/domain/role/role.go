package role

import "strings"

type Role string

const (
	Client Role = "client"
	Master Role = "master"
	Admin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case Client, Master, Admin:
		return true
	}
	return false
}

// Registrable reports whether the role may be chosen at self-registration.
func (r Role) Registrable() bool {
	return r == Client || r == Master
}

func Parse(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uint
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == Admin
}

// OwnerOrAdmin reports whether the actor is userID or an admin.
func (a Actor) OwnerOrAdmin(userID uint) bool {
	return a.UserID == userID || a.IsAdmin()
}

package model

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Actor is the authenticated identity performing a workflow operation.
// The identity provider asserts these fields; the workflow engine trusts
// them as ground truth.
type Actor struct {
	ID   string
	Name string
	Role Role
}

// IsAdmin reports whether the actor carries the administrator role claim
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

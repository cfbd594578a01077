package model

// Role identifies what kind of actor holds the current session.
// The backend issues the three authenticated roles; Anonymous is the
// client-side zero state for "no session".
type Role string

const (
	RoleStudent   Role = "Student"
	RoleTeacher   Role = "Teacher"
	RoleAdmin     Role = "Admin"
	RoleAnonymous Role = "Anonymous"
)

// ParseRole maps a stored role string onto the closed enum.
// Anything unrecognized collapses to Anonymous rather than leaking a
// free-form string into route decisions.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s)
	default:
		return RoleAnonymous
	}
}

// Authenticated reports whether the role belongs to a logged-in actor.
func (r Role) Authenticated() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

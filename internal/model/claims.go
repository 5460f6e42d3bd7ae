package model

// Claims is the identity decoded from a verified token. It exists only for
// the duration of one request and is never persisted. Each field defaults
// to the empty string when the corresponding claim is absent from the
// token payload.
//
// Fields:
//
//	Username – display identity of the caller (claim "username").
//	LabID    – lab/tenant identifier of the caller (claim "labid").
//	Role     – authorization role (claim "role"); "instructor" and
//	           "admin" unlock the admin area.
type Claims struct {
	Username string // token claim "username"
	LabID    string // token claim "labid"
	Role     string // token claim "role"
}

// Roles permitted into the admin area by the request gate.
const (
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
	RoleStudent    = "student"
)

// CanManage reports whether the claims grant access to management
// features (the admin area).
func (c Claims) CanManage() bool {
	return c.Role == RoleInstructor || c.Role == RoleAdmin
}

package rbac

// Role names a bundle of permissions. Roles are open-ended strings so that a
// policy file can introduce new ones; only the table decides what they grant.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCompliance Role = "compliance"
	RoleViewer     Role = "viewer"
)

func (r Role) String() string {
	return string(r)
}

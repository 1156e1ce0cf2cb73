package rbac

import (
	"sort"
)

// PermissionSet is an immutable set of permissions.
type PermissionSet struct {
	members map[Permission]struct{}
}

// NewPermissionSet builds a set from the given permissions. Duplicates are
// collapsed.
func NewPermissionSet(perms ...Permission) PermissionSet {
	members := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		members[p] = struct{}{}
	}
	return PermissionSet{members: members}
}

// Has reports whether p is a member of the set.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s.members[p]
	return ok
}

// Len returns the number of permissions in the set.
func (s PermissionSet) Len() int {
	return len(s.members)
}

// Slice returns the members in catalog order.
func (s PermissionSet) Slice() []Permission {
	perms := make([]Permission, 0, len(s.members))
	for p := range s.members {
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms
}

// Table is the static role assignment table.
type Table struct {
	roles map[Role]PermissionSet
}

// NewTable copies grants into an immutable table.
func NewTable(grants map[Role][]Permission) *Table {
	roles := make(map[Role]PermissionSet, len(grants))
	for role, perms := range grants {
		roles[role] = NewPermissionSet(perms...)
	}
	return &Table{roles: roles}
}

// DefaultTable returns the built-in grants for admin, compliance and viewer.
func DefaultTable() *Table {
	return NewTable(map[Role][]Permission{
		RoleAdmin: PermissionValues(),
		RoleCompliance: {
			PermissionViewSupplierManagement,
			PermissionViewProducers,
			PermissionEditProducer,
			PermissionReviewProducer,
			PermissionViewProducerDetails,
			PermissionViewFarms,
		},
		RoleViewer: {
			PermissionViewSupplierManagement,
			PermissionViewProducers,
			PermissionViewProducerDetails,
			PermissionViewFarms,
		},
	})
}

// PermissionsOf returns the permissions granted to role. Unknown roles get
// the empty set.
func (t *Table) PermissionsOf(role Role) PermissionSet {
	if t == nil {
		return PermissionSet{}
	}
	return t.roles[role]
}

// Grants reports whether role is granted p.
func (t *Table) Grants(role Role, p Permission) bool {
	return t.PermissionsOf(role).Has(p)
}

// Has reports whether role is declared in the table, even with no grants.
func (t *Table) Has(role Role) bool {
	if t == nil {
		return false
	}
	_, ok := t.roles[role]
	return ok
}

// Roles returns the declared roles sorted by name.
func (t *Table) Roles() []Role {
	if t == nil {
		return nil
	}
	roles := make([]Role, 0, len(t.roles))
	for r := range t.roles {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

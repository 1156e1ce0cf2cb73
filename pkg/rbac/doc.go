// Package rbac defines the permission catalog and the role assignment table.
//
// Permissions are a closed set of capability tokens. A Role is a name that the
// Table maps to exactly one set of permissions. The table is built once at
// process start, either from DefaultTable or from a YAML policy file, and is
// read-only afterwards, so it can be shared between goroutines freely.
//
// # Fail-closed lookups
//
// A role that is not present in the table resolves to the empty set:
//
//	table := rbac.DefaultTable()
//	table.PermissionsOf("auditor") // empty, never an error
//
// # Policy files
//
//	roles:
//	  admin: [VIEW_PRODUCERS, EDIT_PRODUCER]
//	  viewer: [VIEW_PRODUCERS]
package rbac

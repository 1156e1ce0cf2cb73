package authz

import (
	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/session"
)

// Engine answers permission and action questions for a session.
type Engine struct {
	table *rbac.Table
	rules Rules
}

// NewEngine creates an engine over table and rules. The rules map is copied.
func NewEngine(table *rbac.Table, rules Rules) *Engine {
	copied := make(Rules, len(rules))
	for action, rule := range rules {
		if rule.Statuses != nil {
			rule.Statuses = append([]model.Status{}, rule.Statuses...)
		}
		copied[action] = rule
	}
	return &Engine{table: table, rules: copied}
}

// Table returns the role table the engine evaluates against.
func (e *Engine) Table() *rbac.Table {
	return e.table
}

// Permissions returns the permissions granted to the session's role.
func (e *Engine) Permissions(s session.Session) rbac.PermissionSet {
	return e.table.PermissionsOf(s.Role)
}

// HasPermission reports whether the session's role grants p.
func (e *Engine) HasPermission(s session.Session, p rbac.Permission) bool {
	return e.table.Grants(s.Role, p)
}

// HasAny reports whether at least one of perms is granted. An empty list is
// never satisfied.
func (e *Engine) HasAny(s session.Session, perms ...rbac.Permission) bool {
	granted := e.Permissions(s)
	for _, p := range perms {
		if granted.Has(p) {
			return true
		}
	}
	return false
}

// HasAll reports whether every one of perms is granted. An empty list is
// trivially satisfied.
func (e *Engine) HasAll(s session.Session, perms ...rbac.Permission) bool {
	granted := e.Permissions(s)
	for _, p := range perms {
		if !granted.Has(p) {
			return false
		}
	}
	return true
}

// IsVisible decides whether a gated piece of the presentation is shown. It is
// satisfied by any one of perms.
func (e *Engine) IsVisible(s session.Session, perms ...rbac.Permission) bool {
	return e.HasAny(s, perms...)
}

// CanPerformAction reports whether the session may perform action on a
// resource in status. Unknown actions are denied.
func (e *Engine) CanPerformAction(s session.Session, action Action, status model.Status) bool {
	rule, ok := e.rules[action]
	if !ok {
		return false
	}
	return rule.Allows(s.Role, e.Permissions(s), status)
}

// RowActions lists, in display order, the actions the session may perform on
// a resource in status.
func (e *Engine) RowActions(s session.Session, status model.Status) []Action {
	perms := e.Permissions(s)
	actions := make([]Action, 0, len(rowActionOrder))
	for _, action := range rowActionOrder {
		rule, ok := e.rules[action]
		if ok && rule.Allows(s.Role, perms, status) {
			actions = append(actions, action)
		}
	}
	return actions
}

/*
Package authz evaluates what the current session may do.

Permission checks are pure lookups against an rbac.Table. Action checks add a
resource's lifecycle status and, for some actions, an exact role match. Both
are driven by data: the Engine holds a Rules table keyed by Action, and
evaluation never branches on a specific action.

	engine := authz.NewEngine(rbac.DefaultTable(), authz.DefaultRules())
	store.Delete(s.TenantID, p.ID, func(cur model.Producer) error {
		if !engine.CanPerformAction(s, authz.ActionDelete, cur.Status) {
			return errDenied
		}
		return nil
	})

A denial is a plain false. Nothing in this package returns an error for a
missing permission, an unknown role or an unknown action.
*/
package authz

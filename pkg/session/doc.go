// Package session holds the identity of the current caller.
//
// A Session is a plain value {UserID, Role, TenantID}. Authentication happens
// elsewhere; this package only stores the result and lets callers replace it
// wholesale, which is how a role switch (a simulated re-login) is expressed.
//
// # Consistent reads
//
// Context.Current returns a copy taken with a single atomic load, so an
// authorization check that reads the session once sees one consistent value
// even while another goroutine replaces it:
//
//	s := ctx.Current()
//	engine.CanPerformAction(s, authz.ActionDelete, p.Status)
//
// # Persistence
//
// The selected role survives restarts through a RoleStore. Context.Adopt
// loads it at startup and Context.Replace saves it on every change.
// FileRoleStore keeps it in a small YAML file and can watch that file for
// changes written by other processes.
package session

package authz

import (
	"sort"

	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/session"
)

// Decision is the outcome of a route guard.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

// Guard decides whether a session may enter a console area.
type Guard struct {
	engine   *Engine
	redirect string
	routes   map[string]rbac.Permission
}

// DefaultRoutes maps console areas to the permission guarding them.
func DefaultRoutes() map[string]rbac.Permission {
	return map[string]rbac.Permission{
		"/supplier-management":           rbac.PermissionViewSupplierManagement,
		"/supplier-management/producers": rbac.PermissionViewProducers,
		"/supplier-management/farms":     rbac.PermissionViewFarms,
		"/shipments":                     rbac.PermissionViewShipments,
		"/publish":                       rbac.PermissionViewPublish,
		"/inquiries":                     rbac.PermissionViewInquiries,
	}
}

// NewGuard creates a guard that sends denied sessions to redirect.
func NewGuard(engine *Engine, redirect string, routes map[string]rbac.Permission) *Guard {
	copied := make(map[string]rbac.Permission, len(routes))
	for path, p := range routes {
		copied[path] = p
	}
	return &Guard{engine: engine, redirect: redirect, routes: copied}
}

// CanActivate allows the session when it holds required, and otherwise
// denies with the configured redirect target.
func (g *Guard) CanActivate(required rbac.Permission, s session.Session) Decision {
	if g.engine.HasPermission(s, required) {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: g.redirect}
}

// Required returns the permission guarding path.
func (g *Guard) Required(path string) (rbac.Permission, bool) {
	required, ok := g.routes[path]
	return required, ok
}

// CanActivatePath applies the guard for a registered path. Unregistered
// paths are denied.
func (g *Guard) CanActivatePath(path string, s session.Session) Decision {
	required, ok := g.Required(path)
	if !ok {
		return Decision{Redirect: g.redirect}
	}
	return g.CanActivate(required, s)
}

// Paths returns the registered paths the session may enter, sorted.
func (g *Guard) Paths(s session.Session) []string {
	var paths []string
	for path, required := range g.routes {
		if g.engine.HasPermission(s, required) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
)

func TestGuard_CanActivate(t *testing.T) {
	guard := NewGuard(NewEngine(rbac.DefaultTable(), DefaultRules()), "/home", DefaultRoutes())

	assert.Equal(t, Decision{Allowed: true}, guard.CanActivate(rbac.PermissionViewProducers, as(rbac.RoleViewer)))
	assert.Equal(t, Decision{Redirect: "/home"}, guard.CanActivate(rbac.PermissionCreateProducer, as(rbac.RoleViewer)))
	assert.Equal(t, Decision{Redirect: "/home"}, guard.CanActivate(rbac.PermissionViewProducers, as("ghost")))
}

func TestGuard_CanActivatePath(t *testing.T) {
	guard := NewGuard(NewEngine(rbac.DefaultTable(), DefaultRules()), "/", DefaultRoutes())

	assert.True(t, guard.CanActivatePath("/supplier-management/farms", as(rbac.RoleViewer)).Allowed)
	assert.False(t, guard.CanActivatePath("/inquiries", as(rbac.RoleViewer)).Allowed)
	assert.True(t, guard.CanActivatePath("/inquiries", as(rbac.RoleAdmin)).Allowed)

	unknown := guard.CanActivatePath("/nowhere", as(rbac.RoleAdmin))
	assert.False(t, unknown.Allowed)
	assert.Equal(t, "/", unknown.Redirect)

	required, ok := guard.Required("/publish")
	assert.True(t, ok)
	assert.Equal(t, rbac.PermissionViewPublish, required)
	_, ok = guard.Required("/nowhere")
	assert.False(t, ok)
}

func TestGuard_Paths(t *testing.T) {
	guard := NewGuard(NewEngine(rbac.DefaultTable(), DefaultRules()), "/", DefaultRoutes())

	assert.Equal(t, []string{
		"/supplier-management",
		"/supplier-management/farms",
		"/supplier-management/producers",
	}, guard.Paths(as(rbac.RoleCompliance)))
	assert.Len(t, guard.Paths(as(rbac.RoleAdmin)), 6)
	assert.Empty(t, guard.Paths(as("ghost")))
}

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/session"
)

func as(role rbac.Role) session.Session {
	return session.Session{UserID: "user-1", Role: role, TenantID: "tenant-1"}
}

func TestEngine_CanPerformAction_TruthTable(t *testing.T) {
	engine := NewEngine(rbac.DefaultTable(), DefaultRules())

	// expected[role][action] lists the statuses that allow the action.
	created, inReview := model.StatusCreated, model.StatusInReview
	all := model.StatusValues()
	expected := map[rbac.Role]map[Action][]model.Status{
		rbac.RoleAdmin: {
			ActionView:   all,
			ActionEdit:   {created, inReview},
			ActionDelete: {created},
			ActionReview: {inReview},
		},
		rbac.RoleCompliance: {
			ActionView:   all,
			ActionEdit:   {created, inReview},
			ActionReview: {inReview},
		},
		rbac.RoleViewer: {
			ActionView: all,
		},
	}

	for _, role := range []rbac.Role{rbac.RoleAdmin, rbac.RoleCompliance, rbac.RoleViewer} {
		for _, action := range ActionValues() {
			for _, status := range all {
				want := false
				for _, s := range expected[role][action] {
					if s == status {
						want = true
					}
				}
				got := engine.CanPerformAction(as(role), action, status)
				assert.Equal(t, want, got, "%s %s %s", role, action, status)
			}
		}
	}
}

func TestEngine_DeleteRequiresAdminRole(t *testing.T) {
	// A role granted DELETE_PRODUCER that is not admin still cannot delete.
	table := rbac.NewTable(map[rbac.Role][]rbac.Permission{
		"manager": {rbac.PermissionDeleteProducer},
	})
	engine := NewEngine(table, DefaultRules())

	assert.False(t, engine.CanPerformAction(as("manager"), ActionDelete, model.StatusCreated))
}

func TestEngine_FailsClosed(t *testing.T) {
	engine := NewEngine(rbac.DefaultTable(), DefaultRules())

	assert.False(t, engine.CanPerformAction(as(rbac.RoleAdmin), Action(0), model.StatusCreated))
	assert.False(t, engine.CanPerformAction(as(rbac.RoleAdmin), Action(99), model.StatusCreated))
	assert.False(t, engine.CanPerformAction(as("ghost"), ActionView, model.StatusCreated))
	assert.False(t, engine.HasPermission(as("ghost"), rbac.PermissionViewProducers))
	assert.Empty(t, engine.RowActions(as("ghost"), model.StatusCreated))
}

func TestEngine_CustomRules(t *testing.T) {
	rules := DefaultRules()
	delete(rules, ActionReview)
	engine := NewEngine(rbac.DefaultTable(), rules)

	// Mutating the caller's map afterwards has no effect.
	rules[ActionReview] = Rule{Permission: rbac.PermissionViewProducers}

	assert.False(t, engine.CanPerformAction(as(rbac.RoleAdmin), ActionReview, model.StatusInReview))
	assert.True(t, engine.CanPerformAction(as(rbac.RoleAdmin), ActionEdit, model.StatusInReview))
}

func TestRule_EmptyStatusesAllowsNothing(t *testing.T) {
	rule := Rule{Permission: rbac.PermissionViewProducers, Statuses: []model.Status{}}
	perms := rbac.NewPermissionSet(rbac.PermissionViewProducers)

	assert.False(t, rule.Allows(rbac.RoleAdmin, perms, model.StatusCreated))
	assert.True(t, Rule{Permission: rbac.PermissionViewProducers}.Allows(rbac.RoleAdmin, perms, model.StatusCreated))
}

func TestEngine_Composition(t *testing.T) {
	engine := NewEngine(rbac.DefaultTable(), DefaultRules())
	viewer := as(rbac.RoleViewer)

	assert.True(t, engine.HasPermission(viewer, rbac.PermissionViewProducers))
	assert.False(t, engine.HasPermission(viewer, rbac.PermissionEditProducer))

	assert.True(t, engine.HasAny(viewer, rbac.PermissionEditProducer, rbac.PermissionViewFarms))
	assert.False(t, engine.HasAny(viewer, rbac.PermissionEditProducer, rbac.PermissionDeleteProducer))
	assert.False(t, engine.HasAny(viewer))

	assert.True(t, engine.HasAll(viewer, rbac.PermissionViewProducers, rbac.PermissionViewFarms))
	assert.False(t, engine.HasAll(viewer, rbac.PermissionViewProducers, rbac.PermissionEditProducer))
	assert.True(t, engine.HasAll(viewer))

	assert.True(t, engine.IsVisible(viewer, rbac.PermissionCreateProducer, rbac.PermissionViewProducers))
	assert.False(t, engine.IsVisible(viewer, rbac.PermissionCreateProducer))
}

func TestEngine_Permissions(t *testing.T) {
	engine := NewEngine(rbac.DefaultTable(), DefaultRules())

	assert.Equal(t, 11, engine.Permissions(as(rbac.RoleAdmin)).Len())
	assert.Equal(t, []rbac.Permission{
		rbac.PermissionViewSupplierManagement,
		rbac.PermissionViewProducers,
		rbac.PermissionViewProducerDetails,
		rbac.PermissionViewFarms,
	}, engine.Permissions(as(rbac.RoleViewer)).Slice())
	assert.Zero(t, engine.Permissions(as("ghost")).Len())
}

func TestEngine_RowActions(t *testing.T) {
	engine := NewEngine(rbac.DefaultTable(), DefaultRules())

	tests := []struct {
		role   rbac.Role
		status model.Status
		want   []Action
	}{
		{rbac.RoleAdmin, model.StatusCreated, []Action{ActionView, ActionEdit, ActionDelete}},
		{rbac.RoleAdmin, model.StatusInReview, []Action{ActionReview, ActionView, ActionEdit}},
		{rbac.RoleAdmin, model.StatusApproved, []Action{ActionView}},
		{rbac.RoleCompliance, model.StatusInReview, []Action{ActionReview, ActionView, ActionEdit}},
		{rbac.RoleViewer, model.StatusCreated, []Action{ActionView}},
	}
	for _, tc := range tests {
		t.Run(tc.role.String()+"/"+tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, engine.RowActions(as(tc.role), tc.status))
		})
	}
}

func TestEngine_CallsArePure(t *testing.T) {
	engine := NewEngine(rbac.DefaultTable(), DefaultRules())
	s := as(rbac.RoleAdmin)

	first := engine.RowActions(s, model.StatusCreated)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.RowActions(s, model.StatusCreated))
	}
}

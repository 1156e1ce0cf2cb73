package authz

import (
	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
)

// Rule is the eligibility condition for one action. All constraints must hold.
type Rule struct {
	// Permission is always required.
	Permission rbac.Permission

	// Statuses lists the lifecycle states the action applies to. Nil means
	// any status.
	Statuses []model.Status

	// Role, when set, must equal the session role exactly.
	Role rbac.Role
}

// Allows reports whether the rule holds for a session with the given role and
// permissions, on a resource in status.
func (r Rule) Allows(role rbac.Role, perms rbac.PermissionSet, status model.Status) bool {
	if !perms.Has(r.Permission) {
		return false
	}
	if r.Role != "" && r.Role != role {
		return false
	}
	if r.Statuses == nil {
		return true
	}
	for _, s := range r.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Rules maps each action to its rule. Actions not present are denied.
type Rules map[Action]Rule

// DefaultRules returns the producer action table.
func DefaultRules() Rules {
	return Rules{
		ActionView: {
			Permission: rbac.PermissionViewProducerDetails,
		},
		ActionEdit: {
			Permission: rbac.PermissionEditProducer,
			Statuses:   []model.Status{model.StatusCreated, model.StatusInReview},
		},
		ActionDelete: {
			Permission: rbac.PermissionDeleteProducer,
			Statuses:   []model.Status{model.StatusCreated},
			Role:       rbac.RoleAdmin,
		},
		ActionReview: {
			Permission: rbac.PermissionReviewProducer,
			Statuses:   []model.Status{model.StatusInReview},
		},
	}
}

// rowActionOrder is the order actions are offered on a listing row.
var rowActionOrder = []Action{ActionReview, ActionView, ActionEdit, ActionDelete}

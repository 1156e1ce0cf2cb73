package session

import (
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
)

// Session is the identity of the current caller.
type Session struct {
	UserID   string    `json:"userId" yaml:"userId"`
	Role     rbac.Role `json:"role" yaml:"role"`
	TenantID string    `json:"tenantId" yaml:"tenantId"`
}

// WithRole returns a copy of s with role replaced.
func (s Session) WithRole(role rbac.Role) Session {
	s.Role = role
	return s
}

// BelongsTo reports whether a resource owned by tenantID is in the caller's
// tenant.
func (s Session) BelongsTo(tenantID string) bool {
	return s.TenantID != "" && s.TenantID == tenantID
}

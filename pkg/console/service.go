package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/doodlesbykumbi/producer-console/pkg/audit"
	"github.com/doodlesbykumbi/producer-console/pkg/authz"
	"github.com/doodlesbykumbi/producer-console/pkg/metrics"
	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/session"
	"github.com/doodlesbykumbi/producer-console/pkg/store"
)

// Options are the collaborators of a Service. Session, Engine and Store are
// required.
type Options struct {
	Session *session.Context
	Engine  *authz.Engine
	Guard   *authz.Guard
	Store   store.ProducerStore
	Audit   *audit.Logger
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	// MaxPageSize caps listing page sizes. Zero leaves them uncapped.
	MaxPageSize int
}

// Service performs console operations on behalf of the current session.
type Service struct {
	session     *session.Context
	engine      *authz.Engine
	guard       *authz.Guard
	store       store.ProducerStore
	audit       *audit.Logger
	logger      *slog.Logger
	metrics     *metrics.Metrics
	maxPageSize int
}

// NewService creates a service. A missing logger discards output and a
// missing guard redirects to "/".
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	guard := opts.Guard
	if guard == nil {
		guard = authz.NewGuard(opts.Engine, "/", authz.DefaultRoutes())
	}
	return &Service{
		session:     opts.Session,
		engine:      opts.Engine,
		guard:       guard,
		store:       opts.Store,
		audit:       opts.Audit,
		logger:      logger,
		metrics:     opts.Metrics,
		maxPageSize: opts.MaxPageSize,
	}
}

// Session returns the current session.
func (s *Service) Session() session.Session {
	return s.session.Current()
}

// Permissions returns the permissions of the current session in catalog order.
func (s *Service) Permissions() []rbac.Permission {
	return s.engine.Permissions(s.session.Current()).Slice()
}

// Roles returns the roles the session may switch to.
func (s *Service) Roles() []rbac.Role {
	return s.engine.Table().Roles()
}

// HasPermission checks a single permission for the current session.
func (s *Service) HasPermission(ctx context.Context, p rbac.Permission) bool {
	sess := s.session.Current()
	allowed := s.engine.HasPermission(sess, p)
	s.recordCheck(ctx, sess, "permission", p.String(), "", allowed)
	return allowed
}

// CanPerformAction checks an action against a status for the current
// session without touching any producer.
func (s *Service) CanPerformAction(ctx context.Context, action authz.Action, status model.Status) bool {
	sess := s.session.Current()
	allowed := s.engine.CanPerformAction(sess, action, status)
	s.recordCheck(ctx, sess, "action", action.String(), status.String(), allowed)
	return allowed
}

// unregisteredRoute is the privilege recorded for paths no route declares.
const unregisteredRoute = "unregistered"

// CanActivate applies the route guard to path. The decision is recorded
// under the permission guarding the path; the path itself only reaches the
// audit subject.
func (s *Service) CanActivate(ctx context.Context, path string) authz.Decision {
	sess := s.session.Current()
	decision := s.guard.CanActivatePath(path, sess)
	privilege := unregisteredRoute
	if required, ok := s.guard.Required(path); ok {
		privilege = required.String()
	}
	s.recordCheck(ctx, sess, "route", privilege, path, decision.Allowed)
	return decision
}

// Areas returns the console paths the current session may enter.
func (s *Service) Areas() []string {
	return s.guard.Paths(s.session.Current())
}

// SwitchRole replaces the session with one holding role. The role must be
// declared by the role table.
func (s *Service) SwitchRole(ctx context.Context, role rbac.Role) (session.Session, error) {
	current := s.session.Current()
	event := audit.RoleSwitchEvent{
		Actor: actor(ctx, current),
		From:  current.Role.String(),
		To:    role.String(),
	}

	if !s.engine.Table().Has(role) {
		err := fmt.Errorf("%w: %q", ErrUnknownRole, role)
		event.ErrorMessage = err.Error()
		s.audit.Log(event)
		return current, err
	}

	next, err := s.session.SwitchRole(role)
	if err != nil {
		// The new session is active even though it was not persisted.
		s.logger.WarnContext(ctx, "role switch not persisted", "role", role, "error", err)
	}
	event.Success = true
	s.audit.Log(event)
	s.logger.InfoContext(ctx, "role switched", "user", next.UserID, "from", current.Role, "to", next.Role)
	return next, nil
}

// authorize looks up id in the session's tenant and checks action on it.
// It serves reads only; mutations check through precondition.
func (s *Service) authorize(ctx context.Context, sess session.Session, action authz.Action, id string) (model.Producer, error) {
	p, ok := s.store.Get(sess.TenantID, id)
	if !ok {
		return model.Producer{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, s.permit(ctx, sess, action, id, p)
}

// precondition returns a store check that applies action to the producer as
// committed when the mutation runs. When seen is set it receives that
// producer.
func (s *Service) precondition(ctx context.Context, sess session.Session, action authz.Action, id string, seen *model.Producer) store.Check {
	return func(p model.Producer) error {
		if seen != nil {
			*seen = p
		}
		return s.permit(ctx, sess, action, id, p)
	}
}

func (s *Service) permit(ctx context.Context, sess session.Session, action authz.Action, id string, p model.Producer) error {
	allowed := s.engine.CanPerformAction(sess, action, p.Status)
	s.recordCheck(ctx, sess, "action", action.String(), id, allowed)
	if !allowed {
		return fmt.Errorf("%w: %s on %s producer %s", ErrDenied, action, p.Status, id)
	}
	return nil
}

// observeMutation counts mutations that reached the store write. Denials and
// misses are not mutations.
func (s *Service) observeMutation(op store.Op, err error) {
	if errors.Is(err, ErrDenied) || errors.Is(err, ErrNotFound) {
		return
	}
	s.metrics.ObserveMutation(string(op), err)
}

// requirePermission checks p for sess and records the decision on subject.
func (s *Service) requirePermission(ctx context.Context, sess session.Session, p rbac.Permission, subject string) error {
	allowed := s.engine.HasPermission(sess, p)
	s.recordCheck(ctx, sess, "permission", p.String(), subject, allowed)
	if !allowed {
		return fmt.Errorf("%w: %s required", ErrDenied, p)
	}
	return nil
}

func (s *Service) recordCheck(ctx context.Context, sess session.Session, kind, privilege, subject string, allowed bool) {
	s.metrics.ObserveDecision(kind, privilege, allowed)
	s.audit.Log(audit.CheckEvent{
		Actor:     actor(ctx, sess),
		Subject:   subject,
		Privilege: privilege,
		Allowed:   allowed,
	})
	if !allowed {
		s.logger.DebugContext(ctx, "authorization denied",
			"kind", kind, "privilege", privilege, "subject", subject, "role", sess.Role)
	}
}

func actor(ctx context.Context, sess session.Session) audit.Actor {
	return audit.Actor{
		UserID:   sess.UserID,
		Role:     sess.Role.String(),
		TenantID: sess.TenantID,
		ClientIP: ClientIP(ctx),
	}
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

package console

import (
	"context"
	"fmt"

	"github.com/doodlesbykumbi/producer-console/pkg/audit"
	"github.com/doodlesbykumbi/producer-console/pkg/authz"
	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/query"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/store"
)

// Listing is a page of producers with the actions offered on each row.
type Listing struct {
	query.Result
	Actions map[string][]authz.Action `json:"actions"`
}

// transitions maps a target status to the action that must be allowed on
// the producer's current status to reach it.
var transitions = map[model.Status]authz.Action{
	model.StatusCreated:  authz.ActionEdit,
	model.StatusInReview: authz.ActionEdit,
	model.StatusApproved: authz.ActionReview,
	model.StatusRejected: authz.ActionReview,
}

// List returns a page of the tenant's producers matching filter.
func (s *Service) List(ctx context.Context, filter query.Filter, page query.Page) (Listing, error) {
	if s.maxPageSize > 0 && page.Size > s.maxPageSize {
		page.Size = s.maxPageSize
	}
	return s.listing(ctx, func(tenantID string) (query.Result, error) {
		return query.Run(s.store.List(tenantID), tenantID, filter, page)
	})
}

// NewView creates a listing view over the store on its first page. Page sizes
// are clamped to the service's maximum.
func (s *Service) NewView(pageSize int) *query.View {
	return query.NewView(s.store, pageSize, s.maxPageSize)
}

// ListView runs v for the session's tenant.
func (s *Service) ListView(ctx context.Context, v *query.View) (Listing, error) {
	return s.listing(ctx, v.Query)
}

func (s *Service) listing(ctx context.Context, run func(tenantID string) (query.Result, error)) (Listing, error) {
	sess := s.session.Current()
	if err := s.requirePermission(ctx, sess, rbac.PermissionViewProducers, "producers"); err != nil {
		return Listing{}, err
	}

	result, err := run(sess.TenantID)
	s.metrics.ObserveQuery(result.Total, err)
	if err != nil {
		return Listing{}, err
	}

	listing := Listing{Result: result, Actions: make(map[string][]authz.Action, len(result.Items))}
	for _, p := range result.Items {
		listing.Actions[p.ID] = s.engine.RowActions(sess, p.Status)
	}
	return listing, nil
}

// Counts returns the status tab totals of the tenant, ignoring any filter.
func (s *Service) Counts(ctx context.Context) (query.Counts, error) {
	sess := s.session.Current()
	if err := s.requirePermission(ctx, sess, rbac.PermissionViewProducers, "producers"); err != nil {
		return query.Counts{}, err
	}
	return query.StatusCounts(s.store.List(sess.TenantID), sess.TenantID), nil
}

// Get returns a producer the session may view.
func (s *Service) Get(ctx context.Context, id string) (model.Producer, error) {
	sess := s.session.Current()
	p, err := s.authorize(ctx, sess, authz.ActionView, id)
	if err != nil {
		return model.Producer{}, err
	}
	return p, nil
}

// RowActions returns the actions the session may perform on a producer.
func (s *Service) RowActions(ctx context.Context, id string) ([]authz.Action, error) {
	sess := s.session.Current()
	p, ok := s.store.Get(sess.TenantID, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.engine.RowActions(sess, p.Status), nil
}

// Create adds a producer to the session's tenant.
func (s *Service) Create(ctx context.Context, fields model.ProducerFields) (model.Producer, error) {
	sess := s.session.Current()
	event := audit.CreateEvent{Actor: actor(ctx, sess), Name: fields.Name}

	if err := s.requirePermission(ctx, sess, rbac.PermissionCreateProducer, "producers"); err != nil {
		event.ErrorMessage = err.Error()
		s.audit.Log(event)
		return model.Producer{}, err
	}

	p, err := s.store.Create(sess.TenantID, fields)
	s.metrics.ObserveMutation(string(store.OpCreated), err)
	event.ProducerID, event.Success, event.ErrorMessage = p.ID, err == nil, errorMessage(err)
	s.audit.Log(event)
	if err != nil {
		return model.Producer{}, err
	}

	s.logger.InfoContext(ctx, "producer created", "tenant", sess.TenantID, "id", p.ID, "name", p.Name)
	return p, nil
}

// Update merges u into a producer the session may edit.
func (s *Service) Update(ctx context.Context, id string, u model.ProducerUpdate) (model.Producer, error) {
	sess := s.session.Current()
	event := audit.UpdateEvent{Actor: actor(ctx, sess), ProducerID: id}

	p, ok, err := s.store.Update(sess.TenantID, id, u, s.precondition(ctx, sess, authz.ActionEdit, id, nil))
	if err == nil && !ok {
		err = fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.observeMutation(store.OpUpdated, err)
	event.Success, event.ErrorMessage = err == nil, errorMessage(err)
	s.audit.Log(event)
	if err != nil {
		return model.Producer{}, err
	}

	s.logger.InfoContext(ctx, "producer updated", "tenant", sess.TenantID, "id", id)
	return p, nil
}

// Delete removes a producer the session may delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	sess := s.session.Current()
	event := audit.DeleteEvent{Actor: actor(ctx, sess), ProducerID: id}

	ok, err := s.store.Delete(sess.TenantID, id, s.precondition(ctx, sess, authz.ActionDelete, id, nil))
	if err == nil && !ok {
		err = fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.observeMutation(store.OpDeleted, err)
	event.Success, event.ErrorMessage = err == nil, errorMessage(err)
	s.audit.Log(event)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "producer deleted", "tenant", sess.TenantID, "id", id)
	return nil
}

// Review approves a producer that is in review.
func (s *Service) Review(ctx context.Context, id string) (model.Producer, error) {
	return s.SetStatus(ctx, id, model.StatusApproved)
}

// Reject rejects a producer that is in review.
func (s *Service) Reject(ctx context.Context, id string) (model.Producer, error) {
	return s.SetStatus(ctx, id, model.StatusRejected)
}

// SetStatus moves a producer to status. Approving and rejecting require the
// review action; every other move requires the edit action.
func (s *Service) SetStatus(ctx context.Context, id string, status model.Status) (model.Producer, error) {
	sess := s.session.Current()
	event := audit.StatusEvent{Actor: actor(ctx, sess), ProducerID: id, To: status.String()}

	action, ok := transitions[status]
	if !ok {
		err := fmt.Errorf("%w: to %s", ErrInvalidTransition, status)
		event.ErrorMessage = err.Error()
		s.audit.Log(event)
		return model.Producer{}, err
	}

	var current model.Producer
	p, ok, err := s.store.SetStatus(sess.TenantID, id, status, s.precondition(ctx, sess, action, id, &current))
	if err == nil && !ok {
		err = fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if ok {
		event.From = current.Status.String()
	}
	s.observeMutation(store.OpStatus, err)
	event.Success, event.ErrorMessage = err == nil, errorMessage(err)
	s.audit.Log(event)
	if err != nil {
		return model.Producer{}, err
	}

	s.logger.InfoContext(ctx, "producer status changed",
		"tenant", sess.TenantID, "id", id, "from", current.Status, "to", p.Status)
	return p, nil
}

// TrackStore keeps the per-tenant producer gauge current. It returns a
// function that stops tracking.
func (s *Service) TrackStore() func() {
	if s.metrics == nil {
		return func() {}
	}
	// Changes arrive in commit order, so the last count set is the count
	// after the last commit.
	stop := s.store.Subscribe(func(c store.Change) {
		s.metrics.SetProducers(c.TenantID, len(s.store.List(c.TenantID)))
	})
	tenant := s.session.Current().TenantID
	s.metrics.SetProducers(tenant, len(s.store.List(tenant)))
	return stop
}

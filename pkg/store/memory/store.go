package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/store"
)

// Ensure Store implements store.ProducerStore
var _ store.ProducerStore = (*Store)(nil)

// Store implements store.ProducerStore in memory. Writers are serialized and
// evaluate their checks inside the write transaction; readers see the last
// committed snapshot.
type Store struct {
	db    *memdb.MemDB
	now   func() time.Time
	newID func() string

	// mu serializes writers so seq stays in commit order.
	mu  sync.Mutex
	seq uint64

	// pubMu orders change delivery.
	pubMu sync.Mutex

	subMu   sync.Mutex
	subs    map[int]func(store.Change)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		// The schema is static.
		panic(fmt.Sprintf("invalid producer schema: %v", err))
	}
	s := &Store{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		subs:  make(map[int]func(store.Change)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create implements store.ProducerStore.
func (s *Store) Create(tenantID string, fields model.ProducerFields) (model.Producer, error) {
	p := model.NewProducer(tenantID, fields)
	p.ID = s.newID()
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt

	if err := s.insert(p, true); err != nil {
		return model.Producer{}, err
	}
	return p, nil
}

// Seed inserts producers as given, keeping their ids, statuses and
// timestamps. Missing ids and timestamps are filled in.
func (s *Store) Seed(producers ...model.Producer) error {
	for _, p := range producers {
		if p.ID == "" {
			p.ID = s.newID()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = s.now()
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = p.CreatedAt
		}
		if err := s.insert(p, false); err != nil {
			return fmt.Errorf("failed to seed producer %q: %w", p.Name, err)
		}
	}
	return nil
}

// Get implements store.ProducerStore.
func (s *Store) Get(tenantID, id string) (model.Producer, bool) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	rec, ok := lookup(txn, tenantID, id)
	if !ok {
		return model.Producer{}, false
	}
	return rec.Producer, true
}

// List implements store.ProducerStore.
func (s *Store) List(tenantID string) []model.Producer {
	txn := s.db.Txn(false)
	defer txn.Abort()

	producers := []model.Producer{}
	// The empty second argument terminates the tenant component, so
	// "tenant-1" does not also match "tenant-10".
	it, err := txn.Get(tableProducers, indexTenantOrder+"_prefix", tenantID, "")
	if err != nil {
		return producers
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		producers = append(producers, obj.(*record).Producer)
	}
	return producers
}

// Update implements store.ProducerStore.
func (s *Store) Update(tenantID, id string, u model.ProducerUpdate, checks ...store.Check) (model.Producer, bool, error) {
	return s.modify(tenantID, id, store.OpUpdated, checks, func(p model.Producer) (model.Producer, error) {
		return u.Apply(p), nil
	})
}

// SetStatus implements store.ProducerStore.
func (s *Store) SetStatus(tenantID, id string, status model.Status, checks ...store.Check) (model.Producer, bool, error) {
	return s.modify(tenantID, id, store.OpStatus, checks, func(p model.Producer) (model.Producer, error) {
		if !status.IsAStatus() {
			return p, fmt.Errorf("%w: unknown status %d", model.ErrInvalidProducer, int(status))
		}
		p.Status = status
		return p, nil
	})
}

// Delete implements store.ProducerStore.
func (s *Store) Delete(tenantID, id string, checks ...store.Check) (bool, error) {
	s.mu.Lock()
	txn := s.db.Txn(true)

	rec, ok := lookup(txn, tenantID, id)
	if !ok {
		txn.Abort()
		s.mu.Unlock()
		return false, nil
	}
	if err := runChecks(checks, rec.Producer); err != nil {
		txn.Abort()
		s.mu.Unlock()
		return true, err
	}
	if err := txn.Delete(tableProducers, rec); err != nil {
		txn.Abort()
		s.mu.Unlock()
		return true, err
	}
	s.commit(txn, &store.Change{Op: store.OpDeleted, TenantID: tenantID, Producer: rec.Producer})
	return true, nil
}

// Subscribe implements store.ProducerStore. Listeners run on the mutating
// goroutine after the change is committed, one change at a time and in
// commit order. A listener may read the store but must not mutate it.
func (s *Store) Subscribe(fn func(store.Change)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) insert(p model.Producer, notify bool) error {
	if p.TenantID == "" {
		return fmt.Errorf("%w: tenant is required", model.ErrInvalidProducer)
	}
	if err := model.Validate(p); err != nil {
		return err
	}

	s.mu.Lock()
	txn := s.db.Txn(true)

	existing, err := txn.First(tableProducers, indexID, p.ID)
	if err == nil && existing != nil {
		err = fmt.Errorf("producer %s already exists", p.ID)
	}
	if err == nil {
		err = txn.Insert(tableProducers, &record{Order: orderKey(s.seq + 1), Producer: p})
	}
	if err != nil {
		txn.Abort()
		s.mu.Unlock()
		return err
	}

	s.seq++
	var change *store.Change
	if notify {
		change = &store.Change{Op: store.OpCreated, TenantID: p.TenantID, Producer: p}
	}
	s.commit(txn, change)
	return nil
}

func (s *Store) modify(tenantID, id string, op store.Op, checks []store.Check, change func(model.Producer) (model.Producer, error)) (model.Producer, bool, error) {
	s.mu.Lock()
	txn := s.db.Txn(true)

	rec, ok := lookup(txn, tenantID, id)
	if !ok {
		txn.Abort()
		s.mu.Unlock()
		return model.Producer{}, false, nil
	}

	previous := rec.Producer
	err := runChecks(checks, previous)
	next := previous
	if err == nil {
		next, err = change(previous)
	}
	if err == nil {
		err = model.Validate(next)
	}
	if err != nil {
		txn.Abort()
		s.mu.Unlock()
		return previous, true, err
	}

	// Identity, tenant and creation time never change.
	next.ID, next.TenantID, next.CreatedAt = previous.ID, previous.TenantID, previous.CreatedAt
	next.UpdatedAt = s.now()

	if err := txn.Insert(tableProducers, &record{Order: rec.Order, Producer: next}); err != nil {
		txn.Abort()
		s.mu.Unlock()
		return previous, true, err
	}
	s.commit(txn, &store.Change{Op: op, TenantID: tenantID, Producer: next, Previous: &previous})
	return next, true, nil
}

// commit commits txn and delivers c, if any, to subscribers. It must be
// called with s.mu held and releases it. pubMu is taken before s.mu is
// released so deliveries keep commit order.
func (s *Store) commit(txn *memdb.Txn, c *store.Change) {
	txn.Commit()
	s.pubMu.Lock()
	s.mu.Unlock()
	defer s.pubMu.Unlock()
	if c != nil {
		s.publish(*c)
	}
}

func runChecks(checks []store.Check, p model.Producer) error {
	for _, check := range checks {
		if check == nil {
			continue
		}
		if err := check(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) publish(c store.Change) {
	s.subMu.Lock()
	subs := make([]func(store.Change), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(c)
	}
}

func lookup(txn *memdb.Txn, tenantID, id string) (*record, bool) {
	if tenantID == "" || id == "" {
		return nil, false
	}
	obj, err := txn.First(tableProducers, indexTenantID, tenantID, id)
	if err != nil || obj == nil {
		return nil, false
	}
	return obj.(*record), true
}

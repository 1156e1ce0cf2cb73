package session

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
)

// Listener is notified with the new session after every replacement.
type Listener func(Session)

// Context owns the current Session.
type Context struct {
	current atomic.Pointer[Session]
	roles   RoleStore

	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
}

// NewContext creates a context holding initial. roles may be nil, in which
// case the selected role is not persisted.
func NewContext(initial Session, roles RoleStore) *Context {
	c := &Context{
		roles:     roles,
		listeners: make(map[int]Listener),
	}
	c.current.Store(&initial)
	return c
}

// Current returns a consistent copy of the session.
func (c *Context) Current() Session {
	return *c.current.Load()
}

// Adopt loads the persisted role and applies it when table declares it.
// It reports whether the session changed. The loaded role is not saved back.
func (c *Context) Adopt(table *rbac.Table) (bool, error) {
	if c.roles == nil {
		return false, nil
	}
	role, ok, err := c.roles.Load()
	if err != nil {
		return false, fmt.Errorf("failed to load persisted role: %w", err)
	}
	if !ok || !table.Has(role) {
		return false, nil
	}
	// Retry until the role lands on the session it was derived from, so a
	// concurrent Replace is never overwritten with stale fields.
	for {
		old := c.current.Load()
		if old.Role == role {
			return false, nil
		}
		next := old.WithRole(role)
		if c.current.CompareAndSwap(old, &next) {
			c.notify(next)
			return true, nil
		}
	}
}

// Replace atomically installs next, persists its role and notifies listeners.
// The new session is visible even when persisting fails.
func (c *Context) Replace(next Session) error {
	c.swap(next)
	if c.roles != nil {
		if err := c.roles.Save(next.Role); err != nil {
			return fmt.Errorf("failed to persist role %q: %w", next.Role, err)
		}
	}
	return nil
}

// SwitchRole replaces the session with one that differs only in role.
func (c *Context) SwitchRole(role rbac.Role) (Session, error) {
	next := c.Current().WithRole(role)
	return next, c.Replace(next)
}

// Subscribe registers l and returns a function that removes it.
func (c *Context) Subscribe(l Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = l

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Context) swap(next Session) {
	s := next
	c.current.Store(&s)
	c.notify(s)
}

func (c *Context) notify(s Session) {
	c.mu.Lock()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(s)
	}
}

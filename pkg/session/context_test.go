package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
)

var adminSession = Session{UserID: "user-1", Role: rbac.RoleAdmin, TenantID: "tenant-1"}

type failingRoleStore struct{}

func (failingRoleStore) Load() (rbac.Role, bool, error) { return "", false, errors.New("boom") }
func (failingRoleStore) Save(rbac.Role) error          { return errors.New("boom") }

func TestContext_SwitchRole(t *testing.T) {
	roles := &MemoryRoleStore{}
	c := NewContext(adminSession, roles)

	next, err := c.SwitchRole(rbac.RoleViewer)
	require.NoError(t, err)

	assert.Equal(t, Session{UserID: "user-1", Role: rbac.RoleViewer, TenantID: "tenant-1"}, next)
	assert.Equal(t, next, c.Current())

	saved, ok, err := roles.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, rbac.RoleViewer, saved)
}

func TestContext_CurrentIsACopy(t *testing.T) {
	c := NewContext(adminSession, nil)

	s := c.Current()
	s.Role = rbac.RoleViewer

	assert.Equal(t, rbac.RoleAdmin, c.Current().Role)
}

func TestContext_ReplacePersistFailure(t *testing.T) {
	c := NewContext(adminSession, failingRoleStore{})

	err := c.Replace(adminSession.WithRole(rbac.RoleCompliance))
	assert.Error(t, err)
	assert.Equal(t, rbac.RoleCompliance, c.Current().Role)
}

func TestContext_Subscribe(t *testing.T) {
	c := NewContext(adminSession, nil)

	var got []rbac.Role
	cancel := c.Subscribe(func(s Session) { got = append(got, s.Role) })

	_, err := c.SwitchRole(rbac.RoleViewer)
	require.NoError(t, err)
	cancel()
	_, err = c.SwitchRole(rbac.RoleCompliance)
	require.NoError(t, err)

	assert.Equal(t, []rbac.Role{rbac.RoleViewer}, got)
}

func TestContext_Adopt(t *testing.T) {
	table := rbac.DefaultTable()

	t.Run("known role is adopted", func(t *testing.T) {
		roles := &MemoryRoleStore{}
		require.NoError(t, roles.Save(rbac.RoleCompliance))
		c := NewContext(adminSession, roles)

		changed, err := c.Adopt(table)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, rbac.RoleCompliance, c.Current().Role)
	})

	t.Run("unknown role is ignored", func(t *testing.T) {
		roles := &MemoryRoleStore{}
		require.NoError(t, roles.Save("superuser"))
		c := NewContext(adminSession, roles)

		changed, err := c.Adopt(table)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, rbac.RoleAdmin, c.Current().Role)
	})

	t.Run("nothing saved", func(t *testing.T) {
		c := NewContext(adminSession, &MemoryRoleStore{})

		changed, err := c.Adopt(table)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("no store", func(t *testing.T) {
		changed, err := NewContext(adminSession, nil).Adopt(table)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("load error", func(t *testing.T) {
		_, err := NewContext(adminSession, failingRoleStore{}).Adopt(table)
		assert.Error(t, err)
	})
}

// fixedRoleStore always loads role and drops saves.
type fixedRoleStore struct{ role rbac.Role }

func (f fixedRoleStore) Load() (rbac.Role, bool, error) { return f.role, true, nil }
func (fixedRoleStore) Save(rbac.Role) error            { return nil }

func TestContext_AdoptKeepsConcurrentReplace(t *testing.T) {
	table := rbac.DefaultTable()
	c := NewContext(adminSession, fixedRoleStore{role: rbac.RoleCompliance})

	const replaces = 500
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer close(done)
		for i := 1; i <= replaces; i++ {
			_ = c.Replace(Session{
				UserID:   fmt.Sprintf("user-%d", i),
				Role:     rbac.RoleViewer,
				TenantID: fmt.Sprintf("tenant-%d", i),
			})
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				if _, err := c.Adopt(table); err != nil {
					t.Errorf("adopt: %v", err)
					return
				}
			}
		}
	}()
	wg.Wait()

	final := c.Current()
	assert.Equal(t, fmt.Sprintf("user-%d", replaces), final.UserID)
	assert.Equal(t, fmt.Sprintf("tenant-%d", replaces), final.TenantID)
	assert.Contains(t, []rbac.Role{rbac.RoleViewer, rbac.RoleCompliance}, final.Role)
}

func TestContext_AdoptNotifiesListeners(t *testing.T) {
	c := NewContext(adminSession, fixedRoleStore{role: rbac.RoleViewer})

	var seen []Session
	c.Subscribe(func(s Session) { seen = append(seen, s) })

	changed, err := c.Adopt(rbac.DefaultTable())
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = c.Adopt(rbac.DefaultTable())
	require.NoError(t, err)
	assert.False(t, changed)

	require.Len(t, seen, 1)
	assert.Equal(t, adminSession.WithRole(rbac.RoleViewer), seen[0])
}

func TestContext_ConcurrentReadsAreConsistent(t *testing.T) {
	c := NewContext(adminSession, nil)
	viewer := Session{UserID: "user-2", Role: rbac.RoleViewer, TenantID: "tenant-2"}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				_ = c.Replace(viewer)
			} else {
				_ = c.Replace(adminSession)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s := c.Current()
			if s != adminSession && s != viewer {
				t.Errorf("torn session read: %+v", s)
				return
			}
		}
	}()
	wg.Wait()
}

func TestSession_BelongsTo(t *testing.T) {
	assert.True(t, adminSession.BelongsTo("tenant-1"))
	assert.False(t, adminSession.BelongsTo("tenant-2"))
	assert.False(t, Session{}.BelongsTo(""))
}

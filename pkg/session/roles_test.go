package session

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
)

func TestFileRoleStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "role.yml")
	store := NewFileRoleStore(path)

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok, "missing file means no saved role")

	require.NoError(t, store.Save(rbac.RoleCompliance))

	role, ok, err := store.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, rbac.RoleCompliance, role)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "role: compliance\n", string(data))
}

func TestFileRoleStore_Load(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, ok, err := NewFileRoleStore(empty).Load()
	require.NoError(t, err)
	assert.False(t, ok)

	broken := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(broken, []byte("role: [admin"), 0o600))
	_, _, err = NewFileRoleStore(broken).Load()
	assert.Error(t, err)
}

func TestFileRoleStore_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "role.yml")
	store := NewFileRoleStore(path)
	c := NewContext(adminSession, store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx, c, rbac.DefaultTable(), logger) }()

	other := NewFileRoleStore(path)
	assert.Eventually(t, func() bool {
		// Keep writing until the watcher has registered.
		_ = other.Save(rbac.RoleViewer)
		return c.Current().Role == rbac.RoleViewer
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
)

// RoleStore persists the selected role.
type RoleStore interface {
	// Load returns the persisted role, or false when none has been saved.
	Load() (rbac.Role, bool, error)

	// Save persists role.
	Save(role rbac.Role) error
}

// MemoryRoleStore keeps the role in process memory.
type MemoryRoleStore struct {
	mu    sync.Mutex
	role  rbac.Role
	saved bool
}

var _ RoleStore = (*MemoryRoleStore)(nil)

// Load implements RoleStore.
func (m *MemoryRoleStore) Load() (rbac.Role, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.role, m.saved, nil
}

// Save implements RoleStore.
func (m *MemoryRoleStore) Save(role rbac.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.role = role
	m.saved = true
	return nil
}

type roleFile struct {
	Role rbac.Role `yaml:"role"`
}

// FileRoleStore keeps the role in a YAML file.
type FileRoleStore struct {
	path string
}

var _ RoleStore = (*FileRoleStore)(nil)

// NewFileRoleStore returns a store backed by path. The file is created on the
// first Save.
func NewFileRoleStore(path string) *FileRoleStore {
	return &FileRoleStore{path: path}
}

// Path returns the backing file.
func (f *FileRoleStore) Path() string {
	return f.path
}

// Load implements RoleStore. A missing or empty file means no role was saved.
func (f *FileRoleStore) Load() (rbac.Role, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var doc roleFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", false, fmt.Errorf("failed to parse role file %s: %w", f.path, err)
	}
	if doc.Role == "" {
		return "", false, nil
	}
	return doc.Role, true, nil
}

// Save implements RoleStore. The file is replaced atomically.
func (f *FileRoleStore) Save(role rbac.Role) error {
	data, err := yaml.Marshal(roleFile{Role: role})
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".role-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// Watch follows the role file and adopts roles written by other processes
// into c. It blocks until ctx is cancelled.
func (f *FileRoleStore) Watch(ctx context.Context, c *Context, table *rbac.Table, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: Save replaces the file by rename.
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(f.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			changed, err := c.Adopt(table)
			if err != nil {
				logger.Warn("role file unreadable", "path", f.path, "error", err)
				continue
			}
			if changed {
				logger.Info("adopted role from file", "path", f.path, "role", c.Current().Role)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("role file watcher error", "error", err)
		}
	}
}

package rbac

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseTable(t *testing.T) {
	t.Run("valid policy", func(t *testing.T) {
		table, err := ParseTable(strings.NewReader(`
roles:
  admin: [VIEW_PRODUCERS, DELETE_PRODUCER]
  auditor: [VIEW_PRODUCERS]
  locked: []
`))
		require.NoError(t, err)

		assert.True(t, table.Grants(RoleAdmin, PermissionDeleteProducer))
		assert.False(t, table.Grants(RoleAdmin, PermissionEditProducer))
		assert.True(t, table.Grants(Role("auditor"), PermissionViewProducers))
		assert.True(t, table.Has(Role("locked")))
		assert.Equal(t, 0, table.PermissionsOf(Role("locked")).Len())
		assert.False(t, table.Has(RoleViewer))
	})

	t.Run("unknown permission token", func(t *testing.T) {
		_, err := ParseTable(strings.NewReader(`
roles:
  admin: [VIEW_PRODUCERS, LAUNCH_ROCKETS]
`))
		assert.Error(t, err)
	})

	t.Run("unknown top-level key", func(t *testing.T) {
		_, err := ParseTable(strings.NewReader(`
groups:
  admin: [VIEW_PRODUCERS]
`))
		assert.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := ParseTable(strings.NewReader(""))
		assert.EqualError(t, err, "policy is empty")
	})
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yml")
	require.NoError(t, os.WriteFile(path, []byte("roles:\n  viewer: [VIEW_FARMS]\n"), 0o600))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []Permission{PermissionViewFarms}, table.PermissionsOf(RoleViewer).Slice())

	_, err = LoadTable(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}

func TestTable_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(DefaultTable())
	require.NoError(t, err)

	table, err := ParseTable(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, DefaultTable().Policy(), table.Policy())
	assert.Contains(t, string(out), "- VIEW_PRODUCER_DETAILS")
}

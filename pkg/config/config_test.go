package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONSOLE_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tenant-1", cfg.TenantID)
	assert.Equal(t, "admin", cfg.DefaultRole)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.True(t, cfg.AuditEnabled)
	assert.Equal(t, "/", cfg.RedirectTarget)
	for _, attr := range cfg.Attributes() {
		assert.Equal(t, SourceDefault, attr.Source, attr.Name)
	}
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	dir := writeConfig(t, `
tenant_id: tenant-7
default_role: viewer
default_page_size: 25
audit_enabled: false
role_file: /var/lib/console/role.yml
`)
	t.Setenv("CONSOLE_CONFIG_PATH", dir)
	t.Setenv("CONSOLE_DEFAULT_ROLE", "compliance")
	t.Setenv("CONSOLE_MAX_PAGE_SIZE", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ConfigFileName), cfg.ConfigFilePath())
	assert.Equal(t, "tenant-7", cfg.TenantID)
	assert.Equal(t, SourceFile, cfg.Source("tenant_id"))
	assert.Equal(t, "compliance", cfg.DefaultRole)
	assert.Equal(t, SourceEnvironment, cfg.Source("default_role"))
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.Equal(t, SourceEnvironment, cfg.Source("max_page_size"))
	assert.False(t, cfg.AuditEnabled)
	assert.Equal(t, SourceFile, cfg.Source("audit_enabled"))
	assert.Equal(t, "/var/lib/console/role.yml", cfg.RoleFile)
	assert.Equal(t, SourceDefault, cfg.Source("listen_address"))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed file", func(t *testing.T) {
		t.Setenv("CONSOLE_CONFIG_PATH", writeConfig(t, "tenant_id: [oops"))
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-numeric environment", func(t *testing.T) {
		t.Setenv("CONSOLE_CONFIG_PATH", t.TempDir())
		t.Setenv("CONSOLE_DEFAULT_PAGE_SIZE", "ten")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ConsoleConfig)
		want   string
	}{
		{"missing tenant", func(c *ConsoleConfig) { c.TenantID = "" }, "tenant_id"},
		{"missing role", func(c *ConsoleConfig) { c.DefaultRole = "" }, "default_role"},
		{"zero max page size", func(c *ConsoleConfig) { c.MaxPageSize = 0 }, "max_page_size"},
		{"page size above max", func(c *ConsoleConfig) { c.DefaultPageSize = 500 }, "default_page_size"},
		{"unknown audit format", func(c *ConsoleConfig) { c.AuditFormat = "xml" }, "audit_format"},
		{"relative redirect", func(c *ConsoleConfig) { c.RedirectTarget = "home" }, "redirect_target"},
		{"bad listen address", func(c *ConsoleConfig) { c.ListenAddress = "8080" }, "listen_address"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFormat(t *testing.T) {
	cfg := Default()

	text := cfg.FormatText()
	assert.Contains(t, text, "NAME")
	assert.True(t, strings.Contains(text, "role_file"))
	assert.Contains(t, text, "(not set)")

	out, err := cfg.FormatJSON()
	require.NoError(t, err)

	var decoded struct {
		Attributes []Attribute `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.Attributes, len(attributeNames()))
}

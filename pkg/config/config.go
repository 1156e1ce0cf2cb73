package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/producer-console/pkg/audit"
)

const (
	DefaultConfigPath = "/etc/producer-console"
	ConfigFileName    = "console.yml"
)

// Sources of an attribute value.
const (
	SourceDefault     = "default"
	SourceFile        = "file"
	SourceEnvironment = "environment"
)

// ConsoleConfig holds all console configuration settings
type ConsoleConfig struct {
	// UserID identifies the operator of this console
	UserID string `yaml:"user_id" json:"user_id"`

	// TenantID scopes every listing and mutation
	TenantID string `yaml:"tenant_id" json:"tenant_id"`

	// DefaultRole is used when no role has been persisted
	DefaultRole string `yaml:"default_role" json:"default_role"`

	// RoleFile persists the selected role; empty keeps it in memory
	RoleFile string `yaml:"role_file" json:"role_file"`

	// PolicyFile replaces the built-in role table
	PolicyFile string `yaml:"policy_file" json:"policy_file"`

	// SeedFile loads producers at startup
	SeedFile string `yaml:"seed_file" json:"seed_file"`

	// DefaultPageSize is the listing page size when none is requested
	DefaultPageSize int `yaml:"default_page_size" json:"default_page_size"`

	// MaxPageSize caps the requested page size
	MaxPageSize int `yaml:"max_page_size" json:"max_page_size"`

	// AuditEnabled turns audit logging on
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// AuditFormat is "syslog" or "json"
	AuditFormat string `yaml:"audit_format" json:"audit_format"`

	// RedirectTarget is where a denied route guard sends the caller
	RedirectTarget string `yaml:"redirect_target" json:"redirect_target"`

	// ListenAddress is the HTTP listen address
	ListenAddress string `yaml:"listen_address" json:"listen_address"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// fileConfig mirrors ConsoleConfig with pointers so that explicit zero
// values in the file are distinguishable from absent keys.
type fileConfig struct {
	UserID          *string `yaml:"user_id"`
	TenantID        *string `yaml:"tenant_id"`
	DefaultRole     *string `yaml:"default_role"`
	RoleFile        *string `yaml:"role_file"`
	PolicyFile      *string `yaml:"policy_file"`
	SeedFile        *string `yaml:"seed_file"`
	DefaultPageSize *int    `yaml:"default_page_size"`
	MaxPageSize     *int    `yaml:"max_page_size"`
	AuditEnabled    *bool   `yaml:"audit_enabled"`
	AuditFormat     *string `yaml:"audit_format"`
	RedirectTarget  *string `yaml:"redirect_target"`
	ListenAddress   *string `yaml:"listen_address"`
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values
func newDefault() *ConsoleConfig {
	c := &ConsoleConfig{
		UserID:          "1",
		TenantID:        "tenant-1",
		DefaultRole:     "admin",
		DefaultPageSize: 10,
		MaxPageSize:     100,
		AuditEnabled:    true,
		AuditFormat:     string(audit.FormatSyslog),
		RedirectTarget:  "/",
		ListenAddress:   ":8080",
		sources:         make(map[string]string),
	}
	for _, name := range attributeNames() {
		c.sources[name] = SourceDefault
	}
	return c
}

// Default returns the built-in configuration.
func Default() *ConsoleConfig {
	return newDefault()
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*ConsoleConfig, error) {
	config := newDefault()

	// Determine config file path
	configPath := os.Getenv("CONSOLE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&file)
	}

	// Override with environment variables
	if err := config.applyEnvConfig(); err != nil {
		return nil, err
	}

	return config, nil
}

func attributeNames() []string {
	return []string{
		"user_id", "tenant_id", "default_role", "role_file", "policy_file",
		"seed_file", "default_page_size", "max_page_size", "audit_enabled",
		"audit_format", "redirect_target", "listen_address",
	}
}

func (c *ConsoleConfig) applyFileConfig(file *fileConfig) {
	setString := func(name string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			c.sources[name] = SourceFile
		}
	}
	setString("user_id", &c.UserID, file.UserID)
	setString("tenant_id", &c.TenantID, file.TenantID)
	setString("default_role", &c.DefaultRole, file.DefaultRole)
	setString("role_file", &c.RoleFile, file.RoleFile)
	setString("policy_file", &c.PolicyFile, file.PolicyFile)
	setString("seed_file", &c.SeedFile, file.SeedFile)
	setString("audit_format", &c.AuditFormat, file.AuditFormat)
	setString("redirect_target", &c.RedirectTarget, file.RedirectTarget)
	setString("listen_address", &c.ListenAddress, file.ListenAddress)

	if file.DefaultPageSize != nil {
		c.DefaultPageSize = *file.DefaultPageSize
		c.sources["default_page_size"] = SourceFile
	}
	if file.MaxPageSize != nil {
		c.MaxPageSize = *file.MaxPageSize
		c.sources["max_page_size"] = SourceFile
	}
	if file.AuditEnabled != nil {
		c.AuditEnabled = *file.AuditEnabled
		c.sources["audit_enabled"] = SourceFile
	}
}

func (c *ConsoleConfig) applyEnvConfig() error {
	stringAttrs := map[string]*string{
		"user_id":         &c.UserID,
		"tenant_id":       &c.TenantID,
		"default_role":    &c.DefaultRole,
		"role_file":       &c.RoleFile,
		"policy_file":     &c.PolicyFile,
		"seed_file":       &c.SeedFile,
		"audit_format":    &c.AuditFormat,
		"redirect_target": &c.RedirectTarget,
		"listen_address":  &c.ListenAddress,
	}
	for name, dst := range stringAttrs {
		if val, ok := os.LookupEnv(envName(name)); ok {
			*dst = val
			c.sources[name] = SourceEnvironment
		}
	}

	intAttrs := map[string]*int{
		"default_page_size": &c.DefaultPageSize,
		"max_page_size":     &c.MaxPageSize,
	}
	for name, dst := range intAttrs {
		if val := os.Getenv(envName(name)); val != "" {
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid %s value %q: %w", envName(name), val, err)
			}
			*dst = i
			c.sources[name] = SourceEnvironment
		}
	}

	if val := os.Getenv(envName("audit_enabled")); val != "" {
		c.AuditEnabled = val == "true" || val == "1"
		c.sources["audit_enabled"] = SourceEnvironment
	}
	return nil
}

func envName(attribute string) string {
	return "CONSOLE_" + strings.ToUpper(attribute)
}

// ConfigFilePath returns the path to the config file
func (c *ConsoleConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *ConsoleConfig) Source(name string) string {
	if c.sources == nil {
		return SourceDefault
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return SourceDefault
}

// Validate validates the configuration
func (c *ConsoleConfig) Validate() error {
	if c.TenantID == "" {
		return fmt.Errorf("tenant_id is required")
	}
	if c.DefaultRole == "" {
		return fmt.Errorf("default_role is required")
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("invalid max_page_size value: %d", c.MaxPageSize)
	}
	if c.DefaultPageSize < 1 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("invalid default_page_size value: %d (must be between 1 and %d)", c.DefaultPageSize, c.MaxPageSize)
	}
	switch audit.Format(c.AuditFormat) {
	case audit.FormatSyslog, audit.FormatJSON:
	default:
		return fmt.Errorf("invalid audit_format value: %s", c.AuditFormat)
	}
	if !strings.HasPrefix(c.RedirectTarget, "/") {
		return fmt.Errorf("invalid redirect_target value: %s (must be an absolute path)", c.RedirectTarget)
	}
	if _, _, err := net.SplitHostPort(c.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen_address value: %s", c.ListenAddress)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *ConsoleConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "user_id", Value: c.UserID, Source: c.Source("user_id")},
		{Name: "tenant_id", Value: c.TenantID, Source: c.Source("tenant_id")},
		{Name: "default_role", Value: c.DefaultRole, Source: c.Source("default_role")},
		{Name: "role_file", Value: c.RoleFile, Source: c.Source("role_file")},
		{Name: "policy_file", Value: c.PolicyFile, Source: c.Source("policy_file")},
		{Name: "seed_file", Value: c.SeedFile, Source: c.Source("seed_file")},
		{Name: "default_page_size", Value: strconv.Itoa(c.DefaultPageSize), Source: c.Source("default_page_size")},
		{Name: "max_page_size", Value: strconv.Itoa(c.MaxPageSize), Source: c.Source("max_page_size")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
		{Name: "audit_format", Value: c.AuditFormat, Source: c.Source("audit_format")},
		{Name: "redirect_target", Value: c.RedirectTarget, Source: c.Source("redirect_target")},
		{Name: "listen_address", Value: c.ListenAddress, Source: c.Source("listen_address")},
	}
}

// FormatText returns a text representation of the configuration
func (c *ConsoleConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *ConsoleConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

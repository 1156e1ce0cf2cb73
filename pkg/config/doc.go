// Package config provides configuration management for the producer console.
//
// # Configuration Sources
//
// Each attribute starts at its default, is overridden by the configuration
// file and then by the environment. The source of every value is recorded
// and shown by "consolectl configuration show".
//
//   - Defaults
//   - $CONSOLE_CONFIG_PATH/console.yml (default /etc/producer-console)
//   - CONSOLE_* environment variables
//
// # Key Configuration Options
//
//   - CONSOLE_TENANT_ID, CONSOLE_USER_ID: Identity of the operator
//   - CONSOLE_DEFAULT_ROLE: Role used when none was persisted
//   - CONSOLE_ROLE_FILE: Where the selected role is persisted
//   - CONSOLE_POLICY_FILE: Role table replacing the built-in grants
//   - CONSOLE_LISTEN_ADDRESS: HTTP listen address
package config

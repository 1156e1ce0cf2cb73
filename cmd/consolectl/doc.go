// Command consolectl runs and administers the producer console.
//
// The console serves a tenant-scoped producer listing whose operations are
// gated by the role of the current session.
//
// # Quick Start
//
//	# Inspect the effective configuration
//	consolectl configuration show
//
//	# Start the HTTP API with producers loaded from a seed file
//	CONSOLE_SEED_FILE=producers.yml consolectl server
//
//	# Switch the persisted role of the session
//	consolectl role switch compliance
//
//	# Query producers from the command line
//	consolectl producers list --search ana --status "In Review"
//
// # Environment Variables
//
//   - CONSOLE_CONFIG_PATH: Directory holding console.yml
//   - CONSOLE_TENANT_ID, CONSOLE_USER_ID: Identity of the session
//   - CONSOLE_DEFAULT_ROLE: Role used when none was persisted
//   - CONSOLE_ROLE_FILE: Where the selected role is persisted
//   - CONSOLE_POLICY_FILE: Role table replacing the built-in grants
//   - CONSOLE_SEED_FILE: Producers loaded at startup
//   - CONSOLE_LISTEN_ADDRESS: HTTP listen address
package main

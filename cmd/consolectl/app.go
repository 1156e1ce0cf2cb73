package main

import (
	"fmt"
	"os"

	"github.com/doodlesbykumbi/producer-console/pkg/audit"
	"github.com/doodlesbykumbi/producer-console/pkg/authz"
	"github.com/doodlesbykumbi/producer-console/pkg/config"
	"github.com/doodlesbykumbi/producer-console/pkg/console"
	"github.com/doodlesbykumbi/producer-console/pkg/metrics"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/session"
	"github.com/doodlesbykumbi/producer-console/pkg/store/memory"
)

// app is the console assembled from configuration.
type app struct {
	cfg      *config.ConsoleConfig
	table    *rbac.Table
	roles    *session.FileRoleStore
	sessions *session.Context
	store    *memory.Store
	metrics  *metrics.Metrics
	service  *console.Service
}

func loadConfig() (*config.ConsoleConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTable(cfg *config.ConsoleConfig) (*rbac.Table, error) {
	if cfg.PolicyFile == "" {
		return rbac.DefaultTable(), nil
	}
	return rbac.LoadTable(cfg.PolicyFile)
}

// newSessions builds the session context and adopts any persisted role.
func newSessions(cfg *config.ConsoleConfig, table *rbac.Table) (*session.Context, *session.FileRoleStore, error) {
	initial := session.Session{
		UserID:   cfg.UserID,
		Role:     rbac.Role(cfg.DefaultRole),
		TenantID: cfg.TenantID,
	}

	if cfg.RoleFile == "" {
		return session.NewContext(initial, &session.MemoryRoleStore{}), nil, nil
	}

	roles := session.NewFileRoleStore(cfg.RoleFile)
	sessions := session.NewContext(initial, roles)
	if _, err := sessions.Adopt(table); err != nil {
		return nil, nil, err
	}
	return sessions, roles, nil
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	table, err := loadTable(cfg)
	if err != nil {
		return nil, err
	}

	sessions, roles, err := newSessions(cfg, table)
	if err != nil {
		return nil, err
	}

	st := memory.New()
	if cfg.SeedFile != "" {
		n, err := st.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded seed producers", "path", cfg.SeedFile, "count", n)
	}

	auditLog := audit.NewLogger(os.Stderr)
	auditLog.SetEnabled(cfg.AuditEnabled)
	auditLog.SetFormat(audit.Format(cfg.AuditFormat))

	engine := authz.NewEngine(table, authz.DefaultRules())
	m := metrics.New()
	service := console.NewService(console.Options{
		Session:     sessions,
		Engine:      engine,
		Guard:       authz.NewGuard(engine, cfg.RedirectTarget, authz.DefaultRoutes()),
		Store:       st,
		Audit:       auditLog,
		Logger:      logger,
		Metrics:     m,
		MaxPageSize: cfg.MaxPageSize,
	})

	return &app{
		cfg:      cfg,
		table:    table,
		roles:    roles,
		sessions: sessions,
		store:    st,
		metrics:  m,
		service:  service,
	}, nil
}

package integration

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/doodlesbykumbi/producer-console/pkg/audit"
	"github.com/doodlesbykumbi/producer-console/pkg/authz"
	"github.com/doodlesbykumbi/producer-console/pkg/console"
	"github.com/doodlesbykumbi/producer-console/pkg/metrics"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/server"
	"github.com/doodlesbykumbi/producer-console/pkg/server/endpoints"
	"github.com/doodlesbykumbi/producer-console/pkg/session"
	"github.com/doodlesbykumbi/producer-console/pkg/store/memory"
)

// ServerInstance is a console API served over a real listener for a single
// scenario.
type ServerInstance struct {
	ServerURL  string
	HTTPClient *http.Client
	Store      *memory.Store
	Sessions   *session.Context
	Audit      *bytes.Buffer

	httpServer *httptest.Server
}

// StartServer wires a console over an empty in-memory store and starts
// serving it.
func StartServer(tenantID string, role rbac.Role) *ServerInstance {
	st := memory.New()
	sessions := session.NewContext(session.Session{UserID: "1", Role: role, TenantID: tenantID}, &session.MemoryRoleStore{})

	var auditLog bytes.Buffer
	m := metrics.New()
	svc := console.NewService(console.Options{
		Session: sessions,
		Engine:  authz.NewEngine(rbac.DefaultTable(), authz.DefaultRules()),
		Store:   st,
		Audit:   audit.NewLogger(&auditLog),
		Metrics: m,
	})

	srv := server.NewServer(svc, m, "", io.Discard)
	endpoints.RegisterAll(srv)
	httpServer := httptest.NewServer(srv.Handler())

	return &ServerInstance{
		ServerURL:  httpServer.URL,
		HTTPClient: httpServer.Client(),
		Store:      st,
		Sessions:   sessions,
		Audit:      &auditLog,
		httpServer: httpServer,
	}
}

// Stop shuts the listener down.
func (s *ServerInstance) Stop() {
	if s != nil && s.httpServer != nil {
		s.httpServer.Close()
	}
}

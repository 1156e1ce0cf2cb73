package endpoints

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doodlesbykumbi/producer-console/pkg/audit"
	"github.com/doodlesbykumbi/producer-console/pkg/authz"
	"github.com/doodlesbykumbi/producer-console/pkg/console"
	"github.com/doodlesbykumbi/producer-console/pkg/metrics"
	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/server"
	"github.com/doodlesbykumbi/producer-console/pkg/session"
	"github.com/doodlesbykumbi/producer-console/pkg/store/memory"
)

const testTenant = "tenant-1"

type testServer struct {
	*server.Server
	Store *memory.Store
	Audit *bytes.Buffer
}

// newTestServer builds a fully wired server over an in-memory store seeded
// with producers.
func newTestServer(t *testing.T, role rbac.Role, producers ...model.Producer) *testServer {
	t.Helper()

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	st := memory.New(memory.WithClock(func() time.Time { return created }))
	if err := st.Seed(producers...); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	var auditLog bytes.Buffer
	m := metrics.New()
	svc := console.NewService(console.Options{
		Session: session.NewContext(session.Session{UserID: "1", Role: role, TenantID: testTenant}, &session.MemoryRoleStore{}),
		Engine:  authz.NewEngine(rbac.DefaultTable(), authz.DefaultRules()),
		Store:   st,
		Audit:   audit.NewLogger(&auditLog),
		Metrics: m,
	})

	srv := server.NewServer(svc, m, "", io.Discard)
	RegisterAll(srv)
	return &testServer{Server: srv, Store: st, Audit: &auditLog}
}

func testProducer(id, name string, status model.Status) model.Producer {
	return model.Producer{
		ID:       id,
		TenantID: testTenant,
		Name:     name,
		Type:     model.ProducerTypeIndividual,
		Serasa:   "3/5",
		EUDR:     "2/4",
		Status:   status,
	}
}

func (ts *testServer) do(t *testing.T, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	return w.Result()
}

func expectStatus(t *testing.T, resp *http.Response, code int) {
	t.Helper()
	if resp.StatusCode != code {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d: %s", code, resp.StatusCode, string(body))
	}
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
}

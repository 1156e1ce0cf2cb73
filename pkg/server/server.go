package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/producer-console/pkg/console"
	"github.com/doodlesbykumbi/producer-console/pkg/metrics"
	"github.com/doodlesbykumbi/producer-console/pkg/server/middleware"
)

// DefaultPageSize is used for listings that do not name a page size.
const DefaultPageSize = 10

type Server struct {
	Console *console.Service
	Metrics *metrics.Metrics
	Router  *mux.Router

	// DefaultPageSize applies when a listing request has no pageSize.
	DefaultPageSize int

	srv *http.Server
}

// NewServer creates a server for svc listening on addr. Access logs are
// written to accessLog in Apache combined format.
func NewServer(
	svc *console.Service,
	m *metrics.Metrics,
	addr string,
	accessLog io.Writer,
) *Server {
	router := mux.NewRouter().UseEncodedPath()

	var handler http.Handler = middleware.ClientIP(router)
	handler = handlers.ProxyHeaders(handler)
	handler = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(handler)
	handler = handlers.CombinedLoggingHandler(accessLog, handler)

	srv := &http.Server{
		Handler:      handler,
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Console:         svc,
		Metrics:         m,
		Router:          router,
		DefaultPageSize: DefaultPageSize,
		srv:             srv,
	}
}

// Handler returns the fully wrapped handler, as served by Start.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

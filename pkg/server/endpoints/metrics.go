package endpoints

import (
	"github.com/doodlesbykumbi/producer-console/pkg/metrics"
	"github.com/doodlesbykumbi/producer-console/pkg/server"
)

// RegisterMetricsEndpoint exposes the Prometheus registry, when the server
// has one.
func RegisterMetricsEndpoint(s *server.Server) {
	if s.Metrics == nil {
		return
	}
	s.Router.Handle(metrics.DefaultPath, s.Metrics.Handler()).Methods("GET")
}

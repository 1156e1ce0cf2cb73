package endpoints

import (
	"github.com/doodlesbykumbi/producer-console/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterProducersEndpoints(srv)
	RegisterSessionEndpoints(srv)
	RegisterAuthzEndpoints(srv)
	RegisterStatusEndpoints(srv)
	RegisterMetricsEndpoint(srv)
}

// Package server provides the HTTP server for the producer console API.
//
// The server uses gorilla/mux for routing. Requests pass through the
// gorilla/handlers proxy, recovery and access log handlers, and the client
// address is attached to the request context for audit events.
//
// # Server Setup
//
//	srv := server.NewServer(svc, metrics, ":8080", os.Stdout)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - /producers - Filtered, paginated listing and creation
//   - /producers/counts - Status tab totals
//   - /producers/{id} - Read, update and delete
//   - /producers/{id}/status, /review, /reject - Lifecycle changes
//   - /session - Current session and role switching
//   - /authz/check, /authz/routes - Authorization queries
//   - /metrics - Prometheus scrape endpoint
package server

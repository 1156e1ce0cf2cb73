package middleware

import (
	"net"
	"net/http"

	"github.com/doodlesbykumbi/producer-console/pkg/console"
)

// ClientIP records the caller's address in the request context so that
// audit events can name it. A RemoteAddr without a port, as left behind by
// handlers.ProxyHeaders, is used as is.
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if host != "" {
			r = r.WithContext(console.WithClientIP(r.Context(), host))
		}
		next.ServeHTTP(w, r)
	})
}

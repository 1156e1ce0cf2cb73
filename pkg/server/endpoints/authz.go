package endpoints

import (
	"fmt"
	"net/http"

	"github.com/doodlesbykumbi/producer-console/pkg/authz"
	"github.com/doodlesbykumbi/producer-console/pkg/console"
	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/server"
)

// CheckResponse is the outcome of an authorization check
type CheckResponse struct {
	Allowed bool `json:"allowed"`
}

// RegisterAuthzEndpoints registers the authorization query endpoints
func RegisterAuthzEndpoints(s *server.Server) {
	svc := s.Console

	// GET /authz/check?permission=EDIT_PRODUCER
	// GET /authz/check?action=delete&status=Created
	s.Router.HandleFunc("/authz/check", handleCheck(svc)).Methods("GET")

	// GET /authz/routes?path=/publish
	s.Router.HandleFunc("/authz/routes", handleRouteGuard(svc)).Methods("GET")
}

func handleCheck(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if token := q.Get("permission"); token != "" {
			p, err := rbac.PermissionString(token)
			if err != nil {
				// Unknown permissions are never held.
				respondWithJSON(w, http.StatusOK, CheckResponse{Allowed: false})
				return
			}
			respondWithJSON(w, http.StatusOK, CheckResponse{Allowed: svc.HasPermission(r.Context(), p)})
			return
		}

		if name := q.Get("action"); name != "" {
			action, err := authz.ActionString(name)
			if err != nil {
				respondWithJSON(w, http.StatusOK, CheckResponse{Allowed: false})
				return
			}
			status, ok := model.ParseStatus(q.Get("status"))
			if !ok {
				respondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown status %q", q.Get("status")))
				return
			}
			respondWithJSON(w, http.StatusOK, CheckResponse{Allowed: svc.CanPerformAction(r.Context(), action, status)})
			return
		}

		respondWithError(w, http.StatusBadRequest, "permission or action is required")
	}
}

func handleRouteGuard(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		if path == "" {
			respondWithJSON(w, http.StatusOK, map[string][]string{"areas": svc.Areas()})
			return
		}

		decision := svc.CanActivate(r.Context(), path)
		code := http.StatusOK
		if !decision.Allowed {
			code = http.StatusForbidden
		}
		respondWithJSON(w, code, decision)
	}
}

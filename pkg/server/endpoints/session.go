package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/producer-console/pkg/console"
	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
	"github.com/doodlesbykumbi/producer-console/pkg/server"
	"github.com/doodlesbykumbi/producer-console/pkg/session"
)

// SessionResponse describes the current session and what it may do
type SessionResponse struct {
	session.Session
	Permissions []rbac.Permission `json:"permissions"`
	Roles       []rbac.Role       `json:"roles"`
	Areas       []string          `json:"areas"`
}

// RoleRequest is the body of PUT /session/role
type RoleRequest struct {
	Role rbac.Role `json:"role"`
}

// RegisterSessionEndpoints registers the session endpoints
func RegisterSessionEndpoints(s *server.Server) {
	svc := s.Console

	s.Router.HandleFunc("/session", handleSession(svc)).Methods("GET")
	s.Router.HandleFunc("/session/role", handleSwitchRole(svc)).Methods("PUT")
}

func handleSession(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, sessionResponse(svc, svc.Session()))
	}
}

func handleSwitchRole(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RoleRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		next, err := svc.SwitchRole(r.Context(), req.Role)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, sessionResponse(svc, next))
	}
}

func sessionResponse(svc *console.Service, sess session.Session) SessionResponse {
	return SessionResponse{
		Session:     sess,
		Permissions: svc.Permissions(),
		Roles:       svc.Roles(),
		Areas:       svc.Areas(),
	}
}

package endpoints

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/producer-console/pkg/authz"
	"github.com/doodlesbykumbi/producer-console/pkg/console"
	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/query"
	"github.com/doodlesbykumbi/producer-console/pkg/server"
)

// StatusRequest is the body of POST /producers/{id}/status
type StatusRequest struct {
	Status model.Status `json:"status"`
}

// ActionsResponse lists the actions offered on one producer
type ActionsResponse struct {
	ID      string         `json:"id"`
	Actions []authz.Action `json:"actions"`
}

// RegisterProducersEndpoints registers the producer listing and lifecycle endpoints
func RegisterProducersEndpoints(s *server.Server) {
	svc := s.Console

	// GET /producers?search=&status=&type=&coverage=&pageNumber=&pageSize=
	s.Router.HandleFunc("/producers", handleListProducers(svc, s.DefaultPageSize)).Methods("GET")
	s.Router.HandleFunc("/producers", handleCreateProducer(svc)).Methods("POST")

	// Registered before /producers/{id} so that "counts" is not taken as an id
	s.Router.HandleFunc("/producers/counts", handleProducerCounts(svc)).Methods("GET")

	s.Router.HandleFunc("/producers/{id}", handleGetProducer(svc)).Methods("GET")
	s.Router.HandleFunc("/producers/{id}", handleUpdateProducer(svc)).Methods("PATCH")
	s.Router.HandleFunc("/producers/{id}", handleDeleteProducer(svc)).Methods("DELETE")
	s.Router.HandleFunc("/producers/{id}/actions", handleProducerActions(svc)).Methods("GET")
	s.Router.HandleFunc("/producers/{id}/status", handleSetStatus(svc)).Methods("POST")
	s.Router.HandleFunc("/producers/{id}/review", handleTransition(svc.Review)).Methods("POST")
	s.Router.HandleFunc("/producers/{id}/reject", handleTransition(svc.Reject)).Methods("POST")
}

func handleListProducers(svc *console.Service, defaultPageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := intParam(r, "pageNumber", 1)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		size, err := intParam(r, "pageSize", defaultPageSize)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		filter := query.ParseFilter(r.URL.Query())
		listing, err := svc.List(r.Context(), filter, query.Page{Number: number, Size: size})
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, listing)
	}
}

func handleProducerCounts(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.Counts(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, counts)
	}
}

func handleCreateProducer(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields model.ProducerFields
		if err := decodeJSON(r, &fields); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), fields)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, p)
	}
}

func handleGetProducer(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, p)
	}
}

func handleUpdateProducer(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update model.ProducerUpdate
		if err := decodeJSON(r, &update); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Update(r.Context(), mux.Vars(r)["id"], update)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, p)
	}
}

func handleDeleteProducer(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
			respondWithServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleProducerActions(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		actions, err := svc.RowActions(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, ActionsResponse{ID: id, Actions: actions})
	}
}

func handleSetStatus(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StatusRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.SetStatus(r.Context(), mux.Vars(r)["id"], req.Status)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, p)
	}
}

func handleTransition(move func(ctx context.Context, id string) (model.Producer, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := move(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, p)
	}
}

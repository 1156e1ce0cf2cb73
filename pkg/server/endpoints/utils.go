package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/doodlesbykumbi/producer-console/pkg/console"
	"github.com/doodlesbykumbi/producer-console/pkg/model"
	"github.com/doodlesbykumbi/producer-console/pkg/query"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithServiceError maps console errors onto HTTP status codes.
func respondWithServiceError(w http.ResponseWriter, err error) {
	respondWithError(w, statusCode(err), err.Error())
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, console.ErrDenied):
		return http.StatusForbidden
	case errors.Is(err, console.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, console.ErrUnknownRole),
		errors.Is(err, query.ErrInvalidPage):
		return http.StatusBadRequest
	case errors.Is(err, console.ErrInvalidTransition),
		errors.Is(err, model.ErrInvalidProducer):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// intParam reads a positive integer query parameter, returning def when it
// is absent.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", query.ErrInvalidPage, name)
	}
	return n, nil
}

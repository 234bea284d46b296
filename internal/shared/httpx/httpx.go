package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// Error carries the HTTP status a handler error should surface as.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func BadRequest(msg string) *Error { return &Error{Code: http.StatusBadRequest, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Code: http.StatusNotFound, Message: msg} }

type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Wrap converts a HandlerFunc error into a JSON error response. Anything that
// is not an *Error is treated as a storage or unexpected failure: logged with
// full detail, surfaced to the client as a generic 500.
func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		var he *Error
		if errors.As(err, &he) {
			WriteJSON(w, map[string]any{"error": he.Message}, he.Code)
			return
		}
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		WriteJSON(w, map[string]any{"error": "internal server error"}, http.StatusInternalServerError)
	})
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	err := json.NewDecoder(r.Body).Decode(&t)
	return t, err
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

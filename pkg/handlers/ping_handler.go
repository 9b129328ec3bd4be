package handlers

import (
	"context"
	"net/http"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

// Ping answers "pong" when every check passes and 503 otherwise.
func Ping(checks ...Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("pong")); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	t.Run("Pong without checks", func(t *testing.T) {
		rec := httptest.NewRecorder()

		Ping()(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("Unavailable when a check fails", func(t *testing.T) {
		rec := httptest.NewRecorder()
		failing := func(context.Context) error { return errors.New("redis down") }

		Ping(alwaysOK, failing)(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func alwaysOK(context.Context) error {
	return nil
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/candidatehub/server/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	})

	middleware := NewLogging(testutil.MakeNoopLogger())
	recorder := httptest.NewRecorder()

	middleware.Handle(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/profiles", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, "body", recorder.Body.String())
}

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	})

	middleware := NewLogging(testutil.MakeNoopLogger())
	recorder := httptest.NewRecorder()

	middleware.Handle(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestAccessLog(t *testing.T) {

	t.Run("handlers can still flush through the recorder", func(t *testing.T) {
		is := is.New(t)

		var flushErr error
		handler := accessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			flushErr = http.NewResponseController(w).Flush()
		}))

		response := httptest.NewRecorder()
		handler.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/", nil))

		is.NoErr(flushErr)
		is.True(response.Flushed)
		is.Equal(response.Code, http.StatusAccepted)
	})

	t.Run("keeps an incoming request id", func(t *testing.T) {
		is := is.New(t)

		handler := accessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(requestIDHeader, "req-42")
		response := httptest.NewRecorder()
		handler.ServeHTTP(response, request)

		is.Equal(response.Header().Get(requestIDHeader), "req-42")
	})
}

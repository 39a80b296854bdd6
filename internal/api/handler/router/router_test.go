package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func tag(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/v1/campaigns/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("id")))
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("a"), tag("b")},
	}))

	t.Run("rota registrada", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/c1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "c1", rec.Body.String())
		assert.Equal(t, "a,b", strings.Join(rec.Header().Values("X-Order"), ","))
	})

	t.Run("rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "HTTP_404")
	})

	t.Run("método não permitido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/campaigns/c1", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/controllers"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *mux.Router {
	router := mux.NewRouter()
	RegisterRoutes(router,
		controllers.NewUserController(nil, nil),
		controllers.NewProductController(nil),
		controllers.NewCheckoutController("https://shop.example.com"),
	)
	return router
}

func TestLiveness(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is running", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestMethodRouting(t *testing.T) {
	router := testRouter()

	// Registered paths reject the wrong method before touching a handler
	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/signup"},
		{http.MethodGet, "/login"},
		{http.MethodPost, "/api/users"},
		{http.MethodGet, "/create-checkout-session"},
		{http.MethodPost, "/product"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestUnknownPath(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

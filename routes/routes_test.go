package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docushop/controllers"
)

func newTestRouter() *mux.Router {
	router := mux.NewRouter()
	RegisterRoutes(router,
		&controllers.UserController{},
		&controllers.CryptoController{},
		&controllers.ProductController{},
		&controllers.OrderController{},
	)
	return router
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DocuShop backend is running", w.Body.String())
}

func TestMethodRouting(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	// Wrong methods never reach a handler.
	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodDelete, path: "/products"},
		{method: http.MethodPost, path: "/users/admin"},
		{method: http.MethodGet, path: "/create-admin"},
		{method: http.MethodPost, path: "/orders/123/cancel"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestRegisterValidationThroughRouter(t *testing.T) {
	t.Parallel()

	router := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/users/register", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateProduct_MalformedJSON(t *testing.T) {
	t.Parallel()

	pc := &ProductController{}
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("{"))
	w := httptest.NewRecorder()

	pc.CreateProduct(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, w))
}

func TestUpdateAddresses_MalformedJSON(t *testing.T) {
	t.Parallel()

	cc := &CryptoController{}
	req := httptest.NewRequest(http.MethodPut, "/crypto-addresses", strings.NewReader(`{"bitcoin":`))
	w := httptest.NewRecorder()

	cc.UpdateAddresses(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, w))
}

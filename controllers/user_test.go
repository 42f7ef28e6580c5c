package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation failures terminate before any collection access, so a
// controller with a nil collection exercises them safely.

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body["error"]
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	uc := &UserController{}

	tests := []struct {
		name string
		body string
	}{
		{name: "missing firstname", body: `{"lastname":"B","username":"ab","email":"a@b.com","phone":"1","password":"pw"}`},
		{name: "missing lastname", body: `{"firstname":"A","username":"ab","email":"a@b.com","phone":"1","password":"pw"}`},
		{name: "missing username", body: `{"firstname":"A","lastname":"B","email":"a@b.com","phone":"1","password":"pw"}`},
		{name: "missing email", body: `{"firstname":"A","lastname":"B","username":"ab","phone":"1","password":"pw"}`},
		{name: "missing phone", body: `{"firstname":"A","lastname":"B","username":"ab","email":"a@b.com","password":"pw"}`},
		{name: "missing password", body: `{"firstname":"A","lastname":"B","username":"ab","email":"a@b.com","phone":"1"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			uc.Register(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "All fields are required", decodeError(t, w))
		})
	}
}

func TestRegister_MalformedJSON(t *testing.T) {
	t.Parallel()

	uc := &UserController{}
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	uc.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, w))
}

func TestLogin_Validation(t *testing.T) {
	t.Parallel()

	uc := &UserController{}

	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"password":"pw"}`},
		{name: "missing password", body: `{"email":"a@b.com"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			uc.Login(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Email and password required", decodeError(t, w))
		})
	}
}

func TestUpdateAdmin_Validation(t *testing.T) {
	t.Parallel()

	uc := &UserController{}

	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"password":"pw"}`},
		{name: "missing password", body: `{"email":"admin@example.com"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPut, "/users/admin", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			uc.UpdateAdmin(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Email and password required", decodeError(t, w))
		})
	}
}

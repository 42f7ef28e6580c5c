package utils

import (
	"encoding/json"
	"net/http"
)

// JSONResponse writes data as a JSON response with the given status code.
func JSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ErrorResponse writes a JSON error body of the form {"error": message}.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, map[string]string{"error": message})
}

// ServerError writes the generic 500 response used for any store or runtime
// failure.
func ServerError(w http.ResponseWriter) {
	ErrorResponse(w, http.StatusInternalServerError, "Server error")
}

package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform failure envelope: {"error": <message>}.
// Successful responses are written as raw payloads, not wrapped.
type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Error writes the failure envelope with the given status code.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}

// BadRequest writes the failure envelope with status 400. All pipeline-level
// errors are converted to this shape at the request-handling boundary.
func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, message)
}

func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}

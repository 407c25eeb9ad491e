package errors

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// JSON writes a JSON error body with the given status.
func JSON(w http.ResponseWriter, status int, message, reason string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message, Reason: reason})
}

// InternalError logs the real error with the request ID and returns a
// generic 500 body to the client.
func InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logWithRequestID(r, "ERROR", message, err)
	JSON(w, http.StatusInternalServerError, "internal server error", "")
}

// BadRequest logs the error and returns the client-safe message with 400.
func BadRequest(w http.ResponseWriter, r *http.Request, err error, clientMessage string) {
	logWithRequestID(r, "WARN", "bad request", err)
	JSON(w, http.StatusBadRequest, clientMessage, "")
}

// LogError records an error with the request ID without writing a response.
func LogError(r *http.Request, message string, err error) {
	logWithRequestID(r, "ERROR", message, err)
}

func logWithRequestID(r *http.Request, level, message string, err error) {
	requestID := middleware.GetReqID(r.Context())
	if requestID != "" {
		log.Printf("[%s] RequestID=%s: %s: %v", level, requestID, message, err)
	} else {
		log.Printf("[%s] %s: %v", level, message, err)
	}
}

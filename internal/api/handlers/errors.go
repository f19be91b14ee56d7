package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// MaxBodyBytes caps JSON request bodies
const MaxBodyBytes = 1 * 1024 * 1024

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type messageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	WriteJSON(w, statusCode, errorResponse{
		Success: false,
		Error:   errorType,
		Message: message,
	})
}

// WriteMessage writes {"success":true,"message":...}
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, messageResponse{
		Success: true,
		Message: message,
	})
}

// WriteJSON encodes body with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Log encoding errors but don't return error response (headers already sent)
		slog.Error("failed to encode response", "error", err)
	}
}

// DecodeJSON reads a size-limited JSON body into dst and writes the 4xx
// response itself on failure. Returns false when the handler should stop.
// An empty body decodes as {} so content validation still runs.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 1MB)")
			return false
		}
		WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return false
	}
	return true
}

// PathID parses a chi URL parameter as an int64 record id.
// ok is false when the segment is not an integer; callers treat that as
// "no such record".
func PathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

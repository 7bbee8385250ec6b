package api

import (
	"net/http"
	"time"
)

// Error type identifiers returned to clients.
const (
	ErrTypeValidation = "validation_error"
	ErrTypeNotFound   = "not_found"
	ErrTypeConflict   = "conflict"
	ErrTypeInternal   = "internal_error"
)

// APIError is the structured error payload for non-engine failures. Engine
// rule failures are not APIErrors: they come back as ordinary results with a
// non-ok outcome.
type APIError struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// writeError writes a structured error response.
func (s *Server) writeError(w http.ResponseWriter, status int, errType, message string) {
	s.writeJSON(w, status, APIError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

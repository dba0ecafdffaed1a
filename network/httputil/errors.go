package httputil

import (
	"net/http"
)

// HasStatusCode is implemented by error payloads that carry their HTTP status.
type HasStatusCode interface {
	StatusCode() int
}

// DefaultErrorJson is a JSON representation of a simple error value, containing only a message and an error code.
type DefaultErrorJson struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// StatusCode returns the error's underlying error code.
func (e *DefaultErrorJson) StatusCode() int {
	return e.Code
}

// HandleError writes a DefaultErrorJson with the given message and code.
func HandleError(w http.ResponseWriter, message string, code int) {
	errJson := &DefaultErrorJson{
		Message: message,
		Code:    code,
	}
	WriteError(w, errJson)
}

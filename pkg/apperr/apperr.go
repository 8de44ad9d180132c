package apperr

import "net/http"

// Error is the application error carried from services up to the HTTP layer.
// Status picks the response code, Fields holds per-field validation messages.
type Error struct {
	Status  int                 `json:"-"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"errors,omitempty"`
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(http.StatusForbidden, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(http.StatusConflict, message) }

// WithFields attaches per-field error lists, e.g. the password policy rules
// a register request violated.
func (e *Error) WithFields(fields map[string][]string) *Error {
	e.Fields = fields
	return e
}

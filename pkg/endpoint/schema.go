package endpoint

import (
	"net/http"
)

// ApiHandler is the shape every HTTP handler in this API implements: it
// returns a nil error on success or an ApiError that the pipeline renders.
type ApiHandler func(http.ResponseWriter, *http.Request) *ApiError

// Middleware decorates an ApiHandler.
type Middleware func(ApiHandler) ApiHandler

type ApiError struct {
	Message string
	Status  int
	Data    map[string]any
	Err     error
}

func (e *ApiError) Error() string {
	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

// ErrorResponse is the wire shape of every failed request: the same
// {success, message} envelope the success paths use.
type ErrorResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Status  int            `json:"status"`
	Data    map[string]any `json:"data,omitempty"`
	Cause   []string       `json:"cause,omitempty"`
}

package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// RespondOk writes a JSON payload with a 200 status and no-store caching.
func RespondOk(w http.ResponseWriter, payload any) error {
	return Respond(w, http.StatusOK, payload)
}

func Respond(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(payload)
}

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	message := fmt.Sprintf("Bad request error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     errors.New(message),
	}
}

func LogBadRequestError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Bad request error: %s", msg),
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func UnauthorisedError(msg string) *ApiError {
	message := fmt.Sprintf("Unauthorised request: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     errors.New(message),
	}
}

func ForbiddenError(msg string) *ApiError {
	message := fmt.Sprintf("Forbidden: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusForbidden,
		Err:     errors.New(message),
	}
}

func TooManyRequests(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusTooManyRequests,
		Err:     errors.New(msg),
	}
}

// ValidationError renders field rejections as a 400 with the failing fields
// attached as data.
func ValidationError(msg string, errs map[string]any) *ApiError {
	message := fmt.Sprintf("Invalid request: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Data:    errs,
		Err:     errors.New(message),
	}
}

func NotFound(msg string) *ApiError {
	message := fmt.Sprintf("Not found error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusNotFound,
		Err:     errors.New(message),
	}
}

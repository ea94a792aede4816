package endpoint

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
)

// debug gates the inclusion of error causes in responses. It is enabled for
// local environments only; production responses never carry internals.
var debug = false

func SetDebug(enabled bool) {
	debug = enabled
}

func NewApiHandler(fn ApiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			slog.Error("API Error", "message", err.Message, "status", err.Status)

			captureApiError(r, err)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(err.Status)

			resp := ErrorResponse{
				Success: false,
				Message: err.Message,
				Status:  err.Status,
				Data:    err.Data,
			}

			if debug && err.Err != nil {
				resp.Cause = buildErrorChain(err.Err)
			}

			if result := json.NewEncoder(w).Encode(resp); result != nil {
				slog.Error("Could not encode error response", "error", result)
			}
		}
	}
}

func captureApiError(r *http.Request, apiErr *ApiError) {
	if apiErr == nil {
		return
	}

	errToCapture := error(apiErr)
	if apiErr.Err != nil {
		errToCapture = apiErr.Err
	}

	notify := func(hub *sentry.Hub) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetRequest(r)
			scope.SetExtra("api_error_status_text", http.StatusText(apiErr.Status))
			scope.SetExtra("api_error_message", apiErr.Message)

			if apiErr.Data != nil {
				scope.SetExtra("api_error_data", apiErr.Data)
			}

			if apiErr.Err != nil {
				scope.SetExtra("api_error_cause_chain", buildErrorChain(apiErr.Err))
			}

			// Expected client errors are logged as info for visibility
			// without triggering alerts; real failures stay at error level.
			scope.SetLevel(getSentryLevel(apiErr.Status))

			hub.CaptureException(errToCapture)
		})
	}

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		notify(hub)
		return
	}

	notify(sentry.CurrentHub())
}

func getSentryLevel(status int) sentry.Level {
	switch status {
	case http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusTooManyRequests:
		return sentry.LevelInfo
	default:
		return sentry.LevelError
	}
}

func buildErrorChain(err error) []string {
	chain := make([]string, 0, 4)

	for current := err; current != nil; current = errors.Unwrap(current) {
		chain = append(chain, current.Error())
	}

	return chain
}

package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"ecokosova-dashboard/internal/api"
)

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError sends an error response
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// RespondAPIError forwards a normalized backend error. Transport failures
// (no backend response) become 502.
func RespondAPIError(w http.ResponseWriter, err error) {
	apiErr := api.AsError(err)

	status := api.StatusCodeOf(err)
	if status == 0 {
		status = http.StatusBadGateway
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
	}

	body := map[string]interface{}{
		"success": false,
		"error":   apiErr.Message,
	}
	if apiErr.Code != "" {
		body["code"] = apiErr.Code
	}
	if len(apiErr.Details) > 0 {
		body["details"] = apiErr.Details
	}
	RespondJSON(w, status, body)
}

// ErrorMessage is the user-facing text of any error
func ErrorMessage(err error) string {
	return api.AsError(err).Message
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/armoury/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// writeError logs server faults before writing the error response.
// Client errors are expected and not logged.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if apierr.StatusOf(err) >= http.StatusInternalServerError {
		logger.Error("request failed", slog.String("error", err.Error()))
	}
	apierr.WriteError(w, err)
}

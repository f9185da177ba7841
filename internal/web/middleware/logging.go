package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/armoury/internal/middleware"
)

// Logging creates logging middleware for the web interface.
// Entries are tagged so fragment requests can be told apart from API calls.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "web")))
}

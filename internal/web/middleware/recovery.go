package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/armoury/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface.
// Full page loads get an HTML error page; htmx fragment requests get a short message
// that fits inside the element being swapped.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)

	if r.Header.Get("HX-Request") == "true" {
		_, _ = w.Write([]byte(`<p class="error">Something went wrong loading this section.</p>`))
		return
	}

	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
<h1>Internal Server Error</h1>
<p>Something went wrong. Please try again later.</p>
<p><a href="/">Return to the armoury</a></p>
</body>
</html>`))
}

package handler

import (
	"net/http"

	"github.com/mcoot/armoury/internal/api/response"
)

// Health handles GET /health
func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

package handler

import (
	"net/http"

	"github.com/mcoot/armoury/internal/web/templates/layout"
)

// HomeHandler handles the home page
type HomeHandler struct {
	stylesheet string
}

// NewHomeHandler creates a new HomeHandler.
// stylesheet is the path of the page stylesheet, or empty for none.
func NewHomeHandler(stylesheet string) *HomeHandler {
	return &HomeHandler{stylesheet: stylesheet}
}

// Home renders the page shell, which loads the tabs over htmx
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := layout.PageData{
		Title:      "Armoury",
		Stylesheet: h.stylesheet,
	}
	render(w, r, layout.Page(data, layout.TabContainer("/data/tabs")))
}

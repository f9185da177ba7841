package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	sharedmw "github.com/mcoot/armoury/internal/middleware"
	"github.com/mcoot/armoury/internal/services/armour"
	"github.com/mcoot/armoury/internal/services/shared"
	"github.com/mcoot/armoury/internal/services/weapon"
	"github.com/mcoot/armoury/internal/web/handler"
	"github.com/mcoot/armoury/internal/web/middleware"
)

// Stylesheet is served from the static directory when one is configured
const Stylesheet = "/static/styles.css"

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	ArmourService *armour.Service
	WeaponService *weapon.Service
	SharedService *shared.Service
	Metrics       *sharedmw.Metrics // optional
	StaticDir     string            // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(sharedmw.RequestID())
	r.Use(middleware.Logging(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	stylesheet := ""
	if cfg.StaticDir != "" {
		stylesheet = Stylesheet
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	homeHandler := handler.NewHomeHandler(stylesheet)
	dataHandler := handler.NewDataHandler(cfg.ArmourService, cfg.WeaponService, cfg.SharedService, cfg.Logger)

	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	data := r.PathPrefix("/data").Subrouter()
	data.HandleFunc("/armour-table", dataHandler.ArmourTable).Methods(http.MethodGet)
	data.HandleFunc("/armour-description/{name}", dataHandler.ArmourDescription).Methods(http.MethodGet)
	data.HandleFunc("/weapon-table", dataHandler.WeaponTable).Methods(http.MethodGet)
	data.HandleFunc("/weapon-property/{property}", dataHandler.WeaponProperty).Methods(http.MethodGet)
	data.HandleFunc("/tabs", dataHandler.Tabs).Methods(http.MethodGet)
	data.HandleFunc("/tabs/{tab}", dataHandler.Tab).Methods(http.MethodGet)

	return r
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/armoury/internal/api/handler"
	"github.com/mcoot/armoury/internal/api/middleware"
	sharedmw "github.com/mcoot/armoury/internal/middleware"
	"github.com/mcoot/armoury/internal/services/armour"
	"github.com/mcoot/armoury/internal/services/shared"
	"github.com/mcoot/armoury/internal/services/weapon"
)

// PathPrefix is where the JSON API is mounted
const PathPrefix = "/api/v1"

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	ArmourService *armour.Service
	WeaponService *weapon.Service
	SharedService *shared.Service
	Metrics       *sharedmw.Metrics
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	catalogue := handler.NewCatalogueHandler(cfg.ArmourService, cfg.WeaponService, cfg.SharedService, cfg.Logger)

	api := r.PathPrefix(PathPrefix).Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.RequestID())
	api.Use(middleware.Logging(cfg.Logger))
	if cfg.Metrics != nil {
		api.Use(cfg.Metrics.Middleware)
	}

	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// Armour routes
	api.HandleFunc("/armour", catalogue.ListArmour).Methods(http.MethodGet)
	api.HandleFunc("/armour/by-type", catalogue.ArmourByType).Methods(http.MethodGet)
	api.HandleFunc("/armour/search", catalogue.SearchArmour).Methods(http.MethodGet)
	api.HandleFunc("/armour/{id:[0-9]+}", catalogue.GetArmour).Methods(http.MethodGet)
	api.HandleFunc("/armour/{name}/description", catalogue.DescribeArmour).Methods(http.MethodGet)

	// Weapon routes
	api.HandleFunc("/weapons", catalogue.ListWeapons).Methods(http.MethodGet)
	api.HandleFunc("/weapons/table", catalogue.WeaponTable).Methods(http.MethodGet)
	api.HandleFunc("/weapons/by-type", catalogue.WeaponsByType).Methods(http.MethodGet)
	api.HandleFunc("/weapons/search", catalogue.SearchWeapons).Methods(http.MethodGet)
	api.HandleFunc("/weapons/properties", catalogue.ListProperties).Methods(http.MethodGet)
	api.HandleFunc("/weapons/properties/{name}", catalogue.GetProperty).Methods(http.MethodGet)
	api.HandleFunc("/weapons/{id:[0-9]+}", catalogue.GetWeapon).Methods(http.MethodGet)

	// Equipment spans both catalogues
	api.HandleFunc("/equipment/search", catalogue.SearchEquipment).Methods(http.MethodGet)
	api.HandleFunc("/equipment/by-type", catalogue.EquipmentByType).Methods(http.MethodGet)
	api.HandleFunc("/equipment/costs", catalogue.EquipmentCosts).Methods(http.MethodGet)

	return r
}

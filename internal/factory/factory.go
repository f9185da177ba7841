package factory

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mcoot/armoury/internal/catalogue"
	"github.com/mcoot/armoury/internal/middleware"
	"github.com/mcoot/armoury/internal/services/armour"
	"github.com/mcoot/armoury/internal/services/shared"
	"github.com/mcoot/armoury/internal/services/weapon"
	"github.com/mcoot/armoury/internal/storage"
	"github.com/mcoot/armoury/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	DB               *sqlite.DB
	ArmourRepository *sqlite.ArmourRepository
	WeaponRepository *sqlite.WeaponRepository

	// Services
	ArmourService *armour.Service
	WeaponService *weapon.Service
	SharedService *shared.Service

	// Observability
	Registry *prometheus.Registry
	Metrics  *middleware.Metrics

	closeOnce sync.Once
	closeErr  error
}

// Config holds configuration for the application factory
type Config struct {
	// DatabasePath is the SQLite file to open (optional)
	// If empty, a private in-memory database is used
	DatabasePath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New opens the catalogue store, creates and seeds its tables if needed,
// and wires the services on top. The caller must Close the App.
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	db, err := sqlite.Open(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return nil, err
	}

	armourRepo := sqlite.NewArmourRepository(db, catalogue.Armours)
	weaponRepo := sqlite.NewWeaponRepository(db, catalogue.Weapons, catalogue.WeaponProperties)

	if err := storage.Initialize(ctx, armourRepo, weaponRepo); err != nil {
		_ = db.Close()
		return nil, err
	}

	return newWithStore(db, armourRepo, weaponRepo), nil
}

func newWithStore(db *sqlite.DB, armourRepo *sqlite.ArmourRepository, weaponRepo *sqlite.WeaponRepository) *App {
	armourService := armour.New(armourRepo)
	weaponService := weapon.New(weaponRepo)
	sharedService := shared.New(armourService, weaponService)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &App{
		DB:               db,
		ArmourRepository: armourRepo,
		WeaponRepository: weaponRepo,
		ArmourService:    armourService,
		WeaponService:    weaponService,
		SharedService:    sharedService,
		Registry:         registry,
		Metrics:          middleware.NewMetrics(registry),
	}
}

// Close releases the store. Repeated calls return the first result.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.closeErr = a.DB.Close()
	})
	return a.closeErr
}

package factory

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/armoury/internal/api"
	"github.com/mcoot/armoury/internal/web"
)

// MetricsPath is where the Prometheus registry is exposed
const MetricsPath = "/metrics"

// Handler combines the JSON API, the htmx web UI and the metrics endpoint.
// An empty staticDir disables static file serving.
func (a *App) Handler(logger *slog.Logger, staticDir string) http.Handler {
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		ArmourService: a.ArmourService,
		WeaponService: a.WeaponService,
		SharedService: a.SharedService,
		Metrics:       a.Metrics,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:        logger,
		ArmourService: a.ArmourService,
		WeaponService: a.WeaponService,
		SharedService: a.SharedService,
		Metrics:       a.Metrics,
		StaticDir:     staticDir,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle(MetricsPath, promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))
	mux.Handle("/", webRouter)
	return mux
}

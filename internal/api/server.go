// Package api assembles the HTTP server: Echo routing and middleware, the
// Huma operation registry, health probes, and Prometheus metrics.
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/maardu-realty/api/openapi"
	"github.com/donaldgifford/maardu-realty/internal/api/handlers"
	"github.com/donaldgifford/maardu-realty/internal/api/middleware"
)

// Portal is the application state served over HTTP.
type Portal interface {
	handlers.ListingSearcher
	handlers.SessionDescriber
	handlers.PaymentService
	handlers.ExpirationChecker
}

// Deps holds everything the server routes to.
type Deps struct {
	Portal   Portal
	Jobs     handlers.JobsProvider
	DB       handlers.Pinger
	Listings handlers.ListingCounter
	Auth     middleware.Authenticator
	Log      *slog.Logger
	Version  string
}

// Server is the assembled HTTP surface.
type Server struct {
	Echo *echo.Echo
	API  huma.API
}

// NewServer builds the Echo instance with every route registered.
func NewServer(d Deps) *Server {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Session(d.Auth))

	health := handlers.NewHealthHandler(d.DB, d.Listings)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	cfg := humaConfig(d.Version)
	openapi.RegisterRoutes(e, cfg.Info.Title)

	api := humaecho.New(e, cfg)

	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(d.Portal))
	handlers.RegisterSessionRoutes(api, handlers.NewSessionHandler(d.Portal))
	handlers.RegisterPaymentRoutes(api, handlers.NewPaymentsHandler(d.Portal))
	handlers.RegisterExpirationRoutes(api, handlers.NewExpirationsHandler(d.Portal))
	if d.Jobs != nil {
		handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(d.Jobs))
	}

	return &Server{Echo: e, API: api}
}

// Handler wraps the server in a tracing handler that starts a server span
// per request and extracts incoming trace context.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.Echo, "http.server",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		}),
	)
}

func humaConfig(version string) huma.Config {
	if version == "" {
		version = "dev"
	}

	cfg := huma.DefaultConfig("Maardu Realty API", version)
	cfg.Info.Description = "Listing search, payment processing, and listing expiration for the Maardu real-estate portal."
	cfg.DocsPath = ""
	if cfg.Components.SecuritySchemes == nil {
		cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	cfg.Components.SecuritySchemes["bearer"] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
	return cfg
}

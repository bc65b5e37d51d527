// Package api assembles the HTTP surface: the huma operations on Echo, the
// probes, the metrics scrape endpoint, Swagger UI and the dashboard.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/donaldgifford/car-deal-finder/api/openapi"
	"github.com/donaldgifford/car-deal-finder/internal/api/handlers"
	"github.com/donaldgifford/car-deal-finder/internal/api/middleware"
	"github.com/donaldgifford/car-deal-finder/internal/api/web"
	"github.com/donaldgifford/car-deal-finder/internal/engine"
	"github.com/donaldgifford/car-deal-finder/internal/store"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Store      store.Store
	Engine     *engine.Engine
	SearchTerm string
	TopN       int
	Version    string
	Logger     *slog.Logger
	Tracer     trace.Tracer
}

// NewRouter builds the Echo instance with every route and middleware
// registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Tracer == nil {
		d.Tracer = noop.NewTracerProvider().Tracer("")
	}
	if d.TopN <= 0 {
		d.TopN = 10
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		middleware.RequestLog(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.Tracing(d.Tracer),
		middleware.Metrics(),
	)

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(d.Store))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Car Deal Finder API", d.Version))

	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(d.Store, d.Engine))
	handlers.RegisterIngestRoutes(api, handlers.NewIngestHandler(d.Engine))
	handlers.RegisterRescoreRoutes(api, handlers.NewRescoreHandler(d.Engine))
	handlers.RegisterScoreRoutes(api, handlers.NewScoresHandler(d.Engine))
	handlers.RegisterConditionRoutes(api, handlers.NewConditionHandler(d.Engine.Classifier()))
	handlers.RegisterConfigRoutes(api, handlers.NewConfigHandler(d.Engine.Scorer().Config(), d.SearchTerm))

	openapi.RegisterRoutes(e, api)
	web.RegisterRoutes(e, web.NewDashboard(d.Engine, d.SearchTerm+" deals", d.TopN, d.Logger))

	return e
}

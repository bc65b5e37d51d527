// Package web serves the HTML dashboard: summary statistics, the score
// histogram and the best deals.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// StatsSource computes score analytics for the dashboard.
type StatsSource interface {
	Stats(ctx context.Context, topN int) (score.Stats[*domain.Listing], error)
}

// Dashboard renders the index page.
type Dashboard struct {
	src   StatsSource
	title string
	topN  int
	log   *slog.Logger
}

// NewDashboard creates a dashboard showing the topN best listings.
func NewDashboard(src StatsSource, title string, topN int, log *slog.Logger) *Dashboard {
	if log == nil {
		log = slog.Default()
	}
	return &Dashboard{src: src, title: title, topN: topN, log: log}
}

// Index renders the dashboard page.
func (d *Dashboard) Index(c echo.Context) error {
	ctx := c.Request().Context()

	st, err := d.src.Stats(ctx, d.topN)
	if err != nil {
		d.log.Error("loading dashboard stats", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "loading stats failed")
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return Page(d.title, st).Render(ctx, c.Response().Writer)
}

// RegisterRoutes adds the dashboard to the Echo instance.
func RegisterRoutes(e *echo.Echo, d *Dashboard) {
	e.GET("/", d.Index)
}

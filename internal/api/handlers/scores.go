package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/car-deal-finder/internal/engine"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// ScoreAnalyzer computes analytics over stored scores.
type ScoreAnalyzer interface {
	Stats(ctx context.Context, topN int) (score.Stats[*domain.Listing], error)
	Distribution(ctx context.Context) (engine.Distribution, error)
}

// ScoresHandler serves score analytics.
type ScoresHandler struct {
	analyzer ScoreAnalyzer
}

// NewScoresHandler creates a new ScoresHandler.
func NewScoresHandler(a ScoreAnalyzer) *ScoresHandler {
	return &ScoresHandler{analyzer: a}
}

// ScoreStatsInput bounds the top listings included in the stats.
type ScoreStatsInput struct {
	Top int `query:"top" doc:"Number of top listings to include" minimum:"1" maximum:"50" default:"10"`
}

// ScoreStats is the analytics record. When no_data is set the statistics
// are zero values, not real measurements.
type ScoreStats struct {
	NoData    bool             `json:"no_data"   doc:"True when no listing has a score"`
	Total     int              `json:"total"     doc:"Listings considered"`
	Scored    int              `json:"scored"    doc:"Listings with a composite score"`
	Unscored  int              `json:"unscored"  doc:"Listings excluded for lack of a score"`
	Min       int              `json:"min"`
	Max       int              `json:"max"`
	Mean      float64          `json:"mean"`
	Median    float64          `json:"median"`
	Std       float64          `json:"std"       doc:"Population standard deviation"`
	Histogram []score.Bucket   `json:"histogram"`
	Top       []domain.Listing `json:"top"`
}

// ScoreStatsOutput is the response for the stats endpoint.
type ScoreStatsOutput struct {
	Body ScoreStats
}

// DistributionOutput is the response for the distribution endpoint.
type DistributionOutput struct {
	Body engine.Distribution
}

// Stats returns summary statistics of the composite scores.
func (h *ScoresHandler) Stats(ctx context.Context, input *ScoreStatsInput) (*ScoreStatsOutput, error) {
	st, err := h.analyzer.Stats(ctx, input.Top)
	if err != nil {
		return nil, huma.Error500InternalServerError("computing stats failed: " + err.Error())
	}

	top := make([]domain.Listing, len(st.Top))
	for i, l := range st.Top {
		top[i] = *l
	}

	return &ScoreStatsOutput{Body: ScoreStats{
		NoData:    st.NoData,
		Total:     st.Total,
		Scored:    st.Scored,
		Unscored:  st.Unscored,
		Min:       st.Min,
		Max:       st.Max,
		Mean:      st.Mean,
		Median:    st.Median,
		Std:       st.Std,
		Histogram: st.Histogram,
		Top:       top,
	}}, nil
}

// Distribution returns every stored score and the fixed-range histogram.
func (h *ScoresHandler) Distribution(ctx context.Context, _ *struct{}) (*DistributionOutput, error) {
	d, err := h.analyzer.Distribution(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("computing distribution failed: " + err.Error())
	}
	return &DistributionOutput{Body: d}, nil
}

// RegisterScoreRoutes registers score analytics endpoints with the Huma API.
func RegisterScoreRoutes(api huma.API, h *ScoresHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "score-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/scores/stats",
		Summary:     "Score statistics",
		Description: "Returns min, max, mean, median, population standard deviation, " +
			"a fixed-range histogram and the top listings.",
		Tags:   []string{"scoring"},
		Errors: []int{http.StatusInternalServerError},
	}, h.Stats)

	huma.Register(api, huma.Operation{
		OperationID: "score-distribution",
		Method:      http.MethodGet,
		Path:        "/api/v1/scores/distribution",
		Summary:     "Score distribution",
		Tags:        []string{"scoring"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Distribution)
}

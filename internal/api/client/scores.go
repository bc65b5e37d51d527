package client

import (
	"context"
	"strconv"

	"github.com/donaldgifford/car-deal-finder/pkg/condition"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// StatsResponse is the score analytics record.
type StatsResponse struct {
	NoData    bool             `json:"no_data"`
	Total     int              `json:"total"`
	Scored    int              `json:"scored"`
	Unscored  int              `json:"unscored"`
	Min       int              `json:"min"`
	Max       int              `json:"max"`
	Mean      float64          `json:"mean"`
	Median    float64          `json:"median"`
	Std       float64          `json:"std"`
	Histogram []score.Bucket   `json:"histogram"`
	Top       []domain.Listing `json:"top"`
}

// Stats returns score analytics with the top N listings. A zero top uses
// the server default.
func (c *Client) Stats(ctx context.Context, top int) (*StatsResponse, error) {
	path := "/api/v1/scores/stats"
	if top > 0 {
		path += "?top=" + strconv.Itoa(top)
	}

	var resp StatsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DistributionResponse lists every stored score with its histogram.
type DistributionResponse struct {
	Scores    []int          `json:"scores"`
	Histogram []score.Bucket `json:"histogram"`
}

// Distribution returns the stored score distribution.
func (c *Client) Distribution(ctx context.Context) (*DistributionResponse, error) {
	var resp DistributionResponse
	if err := c.get(ctx, "/api/v1/scores/distribution", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Rescore triggers a full rescore of all listings.
func (c *Client) Rescore(ctx context.Context) (int, error) {
	var resp struct {
		Scored int `json:"scored"`
	}
	if err := c.post(ctx, "/api/v1/rescore", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Scored, nil
}

// Classification is the classifier result for one text.
type Classification struct {
	Score float64          `json:"score"`
	Label string           `json:"label"`
	Trace *condition.Trace `json:"trace,omitempty"`
}

// Classify scores a condition description on the server.
func (c *Client) Classify(ctx context.Context, text string, trace bool) (*Classification, error) {
	body := map[string]any{"text": text}
	if trace {
		body["trace"] = true
	}

	var resp Classification
	if err := c.post(ctx, "/api/v1/condition/classify", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WeightsResponse is the active scoring configuration.
type WeightsResponse struct {
	Weights    score.Weights     `json:"weights"`
	Winsorize  score.Percentiles `json:"winsorize"`
	SearchTerm string            `json:"search_term,omitempty"`
}

// Weights returns the server's scoring weights.
func (c *Client) Weights(ctx context.Context) (*WeightsResponse, error) {
	var resp WeightsResponse
	if err := c.get(ctx, "/api/v1/config/weights", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
)

// ConfigHandler reports the active scoring configuration.
type ConfigHandler struct {
	cfg    score.Config
	search string
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(cfg score.Config, searchTerm string) *ConfigHandler {
	return &ConfigHandler{cfg: cfg, search: searchTerm}
}

// WeightsOutput is the response for the weights endpoint.
type WeightsOutput struct {
	Body struct {
		Weights    score.Weights     `json:"weights"`
		Winsorize  score.Percentiles `json:"winsorize"`
		SearchTerm string            `json:"search_term,omitempty" example:"Fiat Panda"`
	}
}

// Weights returns the scoring weights and winsorization bounds.
func (h *ConfigHandler) Weights(context.Context, *struct{}) (*WeightsOutput, error) {
	resp := &WeightsOutput{}
	resp.Body.Weights = h.cfg.Weights
	resp.Body.Winsorize = h.cfg.Percentiles
	resp.Body.SearchTerm = h.search
	return resp, nil
}

// RegisterConfigRoutes registers the config endpoint with the Huma API.
func RegisterConfigRoutes(api huma.API, h *ConfigHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-weights",
		Method:      http.MethodGet,
		Path:        "/api/v1/config/weights",
		Summary:     "Scoring weights",
		Description: "Returns the validated weight vector and winsorization percentiles.",
		Tags:        []string{"config"},
	}, h.Weights)
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/car-deal-finder/internal/engine"
)

// Rescorer runs a manually requested scoring pass.
type Rescorer interface {
	TriggerRescore(ctx context.Context) (int, error)
}

// RescoreHandler handles re-scoring requests.
type RescoreHandler struct {
	rescorer Rescorer
}

// NewRescoreHandler creates a new RescoreHandler.
func NewRescoreHandler(r Rescorer) *RescoreHandler {
	return &RescoreHandler{rescorer: r}
}

// RescoreOutput is the response body for the rescore endpoint.
type RescoreOutput struct {
	Body struct {
		Scored int `json:"scored" example:"42" doc:"Number of listings scored"`
	}
}

// Rescore recomputes every listing's scores against the current collection.
func (h *RescoreHandler) Rescore(ctx context.Context, _ *struct{}) (*RescoreOutput, error) {
	scored, err := h.rescorer.TriggerRescore(ctx)
	if errors.Is(err, engine.ErrRescoreThrottled) {
		return nil, huma.Error429TooManyRequests("rescore requested too often, try again later")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("rescore failed: " + err.Error())
	}

	resp := &RescoreOutput{}
	resp.Body.Scored = scored
	return resp, nil
}

// RegisterRescoreRoutes registers the rescore endpoint with the Huma API.
func RegisterRescoreRoutes(api huma.API, h *RescoreHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "rescore-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/rescore",
		Summary:     "Re-score all listings",
		Description: "Runs a full scoring pass over the stored collection.",
		Tags:        []string{"scoring"},
		Errors:      []int{http.StatusTooManyRequests, http.StatusInternalServerError},
	}, h.Rescore)
}

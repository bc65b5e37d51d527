package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/car-deal-finder/internal/engine"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// Ingester stores extracted listings and rescores the collection.
type Ingester interface {
	Ingest(ctx context.Context, listings []domain.IngestListing) (engine.IngestResult, error)
}

// IngestHandler accepts batches from the extraction side.
type IngestHandler struct {
	ingester Ingester
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(ing Ingester) *IngestHandler {
	return &IngestHandler{ingester: ing}
}

// IngestInput is a batch of extracted listings.
type IngestInput struct {
	Body struct {
		Listings []domain.IngestListing `json:"listings" doc:"Extracted listings keyed by URL" minItems:"1" maxItems:"1000"`
	}
}

// IngestOutput is the response body for the ingest endpoint.
type IngestOutput struct {
	Body struct {
		engine.IngestResult
		Errors []string `json:"errors,omitempty" doc:"Per-listing failures"`
	}
}

// Ingest stores the batch and runs a scoring pass. Partial failures are
// reported in the body; the request only fails when nothing was stored.
func (h *IngestHandler) Ingest(ctx context.Context, input *IngestInput) (*IngestOutput, error) {
	res, err := h.ingester.Ingest(ctx, input.Body.Listings)
	if err != nil && res.Stored == 0 {
		return nil, huma.Error500InternalServerError("ingest failed: " + err.Error())
	}

	resp := &IngestOutput{}
	resp.Body.IngestResult = res
	if err != nil {
		resp.Body.Errors = unwrapJoined(err)
	}
	return resp, nil
}

// unwrapJoined splits an errors.Join result into its messages.
func unwrapJoined(err error) []string {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []string{err.Error()}
	}

	errs := joined.Unwrap()
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return msgs
}

// RegisterIngestRoutes registers the ingest endpoint with the Huma API.
func RegisterIngestRoutes(api huma.API, h *IngestHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ingest-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/ingest",
		Summary:     "Ingest extracted listings",
		Description: "Classifies condition text, upserts each listing by URL, and " +
			"rescores the whole collection.",
		Tags:   []string{"ingest"},
		Errors: []int{http.StatusInternalServerError},
	}, h.Ingest)
}

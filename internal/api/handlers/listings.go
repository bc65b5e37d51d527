package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/car-deal-finder/internal/store"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// ListingUpdater applies partial listing updates, reclassifying and
// rescoring as needed.
type ListingUpdater interface {
	UpdateListing(ctx context.Context, id string, p *domain.ListingPatch) (*domain.Listing, error)
}

// ListingsHandler handles listing query endpoints.
type ListingsHandler struct {
	store   store.Store
	updater ListingUpdater
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store, u ListingUpdater) *ListingsHandler {
	return &ListingsHandler{store: s, updater: u}
}

// --- Input/Output types ---

// ListListingsInput is the input for listing listings with optional filters.
// Zero-valued filters are not applied.
type ListListingsInput struct {
	MinPrice   float64 `query:"min_price"   doc:"Minimum price (DKK)"           minimum:"0"`
	MaxPrice   float64 `query:"max_price"   doc:"Maximum price (DKK)"           minimum:"0"`
	MinYear    int     `query:"min_year"    doc:"Minimum model year"            minimum:"0"`
	MaxYear    int     `query:"max_year"    doc:"Maximum model year"            minimum:"0"`
	MinMileage int     `query:"min_mileage" doc:"Minimum kilometers driven"     minimum:"0"`
	MaxMileage int     `query:"max_mileage" doc:"Maximum kilometers driven"     minimum:"0"`
	MinScore   int     `query:"min_score"   doc:"Minimum composite score"       minimum:"0" maximum:"100"`
	SortBy     string  `query:"sort_by"     doc:"Sort field"                                              enum:"score,price,model_year,mileage,fetched_at,condition_score," default:"score"`
	Order      string  `query:"order"       doc:"Sort direction"                                          enum:"asc,desc,"                                                   default:"desc"`
	Limit      int     `query:"limit"       doc:"Number of results (default 50)" minimum:"0" maximum:"1000"`
	Offset     int     `query:"offset"      doc:"Pagination offset"             minimum:"0"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// ListingIDInput addresses a single listing.
type ListingIDInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// GetListingOutput is the response for getting a single listing.
type GetListingOutput struct {
	Body domain.Listing
}

// UpdateListingInput is a partial listing update.
type UpdateListingInput struct {
	ID   string `path:"id" doc:"Listing UUID"`
	Body domain.ListingPatch
}

// TopListingsInput bounds the top listings query.
type TopListingsInput struct {
	Limit int `query:"limit" doc:"Number of listings" minimum:"1" maximum:"50" default:"10"`
}

// TopListingsOutput is the response for the top listings query.
type TopListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
	}
}

// --- Handlers ---

// ListListings returns listings filtered by price, model year, mileage and
// score ranges, sorted and paginated.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	q := &store.ListingQuery{
		SortBy:    store.SortField(input.SortBy),
		Ascending: input.Order == "asc",
		Limit:     input.Limit,
		Offset:    input.Offset,
	}

	if input.MinPrice != 0 {
		q.MinPrice = &input.MinPrice
	}
	if input.MaxPrice != 0 {
		q.MaxPrice = &input.MaxPrice
	}
	if input.MinYear != 0 {
		q.MinYear = &input.MinYear
	}
	if input.MaxYear != 0 {
		q.MaxYear = &input.MaxYear
	}
	if input.MinMileage != 0 {
		q.MinMileage = &input.MinMileage
	}
	if input.MaxMileage != 0 {
		q.MaxMileage = &input.MaxMileage
	}
	if input.MinScore != 0 {
		q.MinScore = &input.MinScore
	}

	listings, total, err := h.store.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = total
	resp.Body.Limit = q.EffectiveLimit()
	resp.Body.Offset = max(q.Offset, 0)

	return resp, nil
}

// GetListing returns a single listing by ID.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *ListingIDInput,
) (*GetListingOutput, error) {
	if !validID(input.ID) {
		return nil, huma.Error404NotFound("listing not found")
	}

	listing, err := h.store.GetListingByID(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("listing not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("getting listing failed: " + err.Error())
	}

	return &GetListingOutput{Body: *listing}, nil
}

// UpdateListing applies a partial update to a listing.
func (h *ListingsHandler) UpdateListing(
	ctx context.Context,
	input *UpdateListingInput,
) (*GetListingOutput, error) {
	if !validID(input.ID) {
		return nil, huma.Error404NotFound("listing not found")
	}
	if input.Body.Empty() {
		return nil, huma.Error400BadRequest("patch changes nothing")
	}

	listing, err := h.updater.UpdateListing(ctx, input.ID, &input.Body)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("listing not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("updating listing failed: " + err.Error())
	}

	return &GetListingOutput{Body: *listing}, nil
}

// DeleteListing removes a listing. Scores of the remaining listings are
// refreshed by the next scoring pass.
func (h *ListingsHandler) DeleteListing(
	ctx context.Context,
	input *ListingIDInput,
) (*struct{}, error) {
	if !validID(input.ID) {
		return nil, huma.Error404NotFound("listing not found")
	}

	deleted, err := h.store.DeleteListing(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("deleting listing failed: " + err.Error())
	}
	if !deleted {
		return nil, huma.Error404NotFound("listing not found")
	}
	return nil, nil
}

// TopListings returns the best scored listings.
func (h *ListingsHandler) TopListings(
	ctx context.Context,
	input *TopListingsInput,
) (*TopListingsOutput, error) {
	listings, err := h.store.TopListings(ctx, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("top listings query failed: " + err.Error())
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &TopListingsOutput{}
	resp.Body.Listings = listings
	return resp, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns listings filtered by price, model year, mileage and score, " +
			"sorted by the chosen field with unscored listings last.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusInternalServerError},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "top-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/top",
		Summary:     "Top listings",
		Description: "Returns the highest scored listings, best first.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.TopListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Description: "Returns a single listing by its UUID.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetListing)

	huma.Register(api, huma.Operation{
		OperationID: "update-listing",
		Method:      http.MethodPatch,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Update a listing",
		Description: "Applies a partial update. Changing a scoring input reclassifies " +
			"the condition text if needed and rescores the collection.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.UpdateListing)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-listing",
		Method:        http.MethodDelete,
		Path:          "/api/v1/listings/{id}",
		Summary:       "Delete a listing",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.DeleteListing)
}

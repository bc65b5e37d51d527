package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListListingsParams defines query parameters for listing queries. Zero
// values are left out of the request.
type ListListingsParams struct {
	MinPrice   float64
	MaxPrice   float64
	MinYear    int
	MaxYear    int
	MinMileage int
	MaxMileage int
	MinScore   int
	SortBy     string
	Order      string
	Limit      int
	Offset     int
}

func (p *ListListingsParams) values() url.Values {
	q := url.Values{}
	setFloat := func(key string, v float64) {
		if v > 0 {
			q.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	setInt := func(key string, v int) {
		if v > 0 {
			q.Set(key, strconv.Itoa(v))
		}
	}

	setFloat("min_price", p.MinPrice)
	setFloat("max_price", p.MaxPrice)
	setInt("min_year", p.MinYear)
	setInt("max_year", p.MaxYear)
	setInt("min_mileage", p.MinMileage)
	setInt("max_mileage", p.MaxMileage)
	setInt("min_score", p.MinScore)
	setInt("limit", p.Limit)
	setInt("offset", p.Offset)
	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
	}
	if p.Order != "" {
		q.Set("order", p.Order)
	}
	return q
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	path := "/api/v1/listings"
	if params != nil {
		if q := params.values(); len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateListing applies a partial update and returns the updated listing.
func (c *Client) UpdateListing(
	ctx context.Context,
	id string,
	patch *domain.ListingPatch,
) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.patch(ctx, "/api/v1/listings/"+url.PathEscape(id), patch, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteListing removes a listing.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/listings/"+url.PathEscape(id))
}

// TopListings returns the best scored listings. A zero limit uses the
// server default.
func (c *Client) TopListings(ctx context.Context, limit int) ([]domain.Listing, error) {
	path := "/api/v1/listings/top"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp struct {
		Listings []domain.Listing `json:"listings"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Listings, nil
}

// IngestResponse summarizes an ingest call.
type IngestResponse struct {
	Received int      `json:"received"`
	Stored   int      `json:"stored"`
	Failed   int      `json:"failed"`
	Scored   int      `json:"scored"`
	Errors   []string `json:"errors,omitempty"`
}

// Ingest submits extracted listings for storage and scoring.
func (c *Client) Ingest(ctx context.Context, listings []domain.IngestListing) (*IngestResponse, error) {
	body := struct {
		Listings []domain.IngestListing `json:"listings"`
	}{Listings: listings}

	var resp IngestResponse
	if err := c.post(ctx, "/api/v1/listings/ingest", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

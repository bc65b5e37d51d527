// Package handlers implements the HTTP API of car-deal-finder as huma
// operations, plus the plain Echo probe endpoints.
package handlers

import (
	"github.com/google/uuid"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// validID reports whether id can be a listing ID. Listing IDs are UUIDs, so
// anything else cannot exist and is answered with 404 without a query.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Package notify defines the notification interface and implementations
// for deal alert delivery.
package notify

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// AlertPayload contains the data needed to send a deal alert notification.
type AlertPayload struct {
	SearchTerm   string
	ListingTitle string
	URL          string
	Price        string
	ModelYear    string
	Mileage      string
	Score        int
	Condition    string
	Location     string
}

// Notifier defines the interface for sending deal alert notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, searchTerm string) error
}

// NewAlertPayload builds the alert for a scored listing. Missing
// attributes render as "-".
func NewAlertPayload(searchTerm string, l *domain.Listing) AlertPayload {
	p := AlertPayload{
		SearchTerm:   searchTerm,
		ListingTitle: l.Title,
		URL:          l.URL,
		Price:        "-",
		ModelYear:    "-",
		Mileage:      "-",
		Condition:    l.ConditionLabel,
		Location:     l.Location,
	}
	if p.ListingTitle == "" {
		p.ListingTitle = l.URL
	}
	if l.Score != nil {
		p.Score = *l.Score
	}
	if l.Price != nil {
		p.Price = fmt.Sprintf("%.0f kr.", *l.Price)
	}
	if l.ModelYear != nil {
		p.ModelYear = fmt.Sprintf("%d", *l.ModelYear)
	}
	if l.Mileage != nil {
		p.Mileage = fmt.Sprintf("%d km", *l.Mileage)
	}
	if p.Condition == "" {
		p.Condition = "-"
	}
	return p
}

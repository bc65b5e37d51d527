// Package domain defines the core business types for the car deal finder.
package domain

import (
	"time"
)

// NeutralScore is the component score assigned when an attribute is missing,
// unparseable, or cannot be normalized.
const NeutralScore = 0.5

// ListingAttributes is the typed record handed over by the extraction
// collaborator. Every scoring input is optional.
type ListingAttributes struct {
	// ID is a stable key of the listing (storage ID or URL).
	ID            string   `json:"id"`
	Price         *float64 `json:"price,omitempty"`
	ModelYear     *int     `json:"model_year,omitempty"`
	Mileage       *int     `json:"mileage,omitempty"`
	ConditionText *string  `json:"condition_text,omitempty"`

	// ConditionScore carries a previously classified condition score. When
	// nil the scorer classifies ConditionText itself.
	ConditionScore *float64 `json:"condition_score,omitempty"`
}

// ComponentScores holds the four normalized sub-scores, each in [0, 1].
type ComponentScores struct {
	Price     float64 `json:"price"`
	Year      float64 `json:"year"`
	Mileage   float64 `json:"mileage"`
	Condition float64 `json:"condition"`
}

// NeutralComponents returns component scores with every field at NeutralScore.
func NeutralComponents() ComponentScores {
	return ComponentScores{
		Price:     NeutralScore,
		Year:      NeutralScore,
		Mileage:   NeutralScore,
		Condition: NeutralScore,
	}
}

// CompositeScore is the weighted aggregate of a listing's component scores.
type CompositeScore struct {
	Raw   float64 `json:"raw"`
	Total int     `json:"total"`
}

// ScoreUpdate is the tuple persisted after each scoring pass.
type ScoreUpdate struct {
	ID         string          `json:"id"`
	Components ComponentScores `json:"components"`
	Composite  CompositeScore  `json:"composite"`
}

// Listing represents a persisted car listing with extracted attributes and
// the scores of the most recent scoring pass.
type Listing struct {
	ID    string `json:"id"    db:"id"`
	URL   string `json:"url"   db:"url"`
	Title string `json:"title" db:"title"`

	// Scoring inputs
	Price          *float64 `json:"price,omitempty"           db:"price"`
	ModelYear      *int     `json:"model_year,omitempty"      db:"model_year"`
	Mileage        *int     `json:"mileage,omitempty"         db:"mileage"`
	ConditionText  *string  `json:"condition_text,omitempty"  db:"condition_text"`
	ConditionScore *float64 `json:"condition_score,omitempty" db:"condition_score"`
	ConditionLabel string   `json:"condition_label,omitempty" db:"condition_label"`

	// Descriptive
	Brand        string `json:"brand,omitempty"        db:"brand"`
	Model        string `json:"model,omitempty"        db:"model"`
	FuelType     string `json:"fuel_type,omitempty"    db:"fuel_type"`
	Transmission string `json:"transmission,omitempty" db:"transmission"`
	BodyType     string `json:"body_type,omitempty"    db:"body_type"`
	Location     string `json:"location,omitempty"     db:"location"`
	DealerName   string `json:"dealer_name,omitempty"  db:"dealer_name"`

	// Scoring
	PriceScore   *float64 `json:"price_score,omitempty"   db:"price_score"`
	YearScore    *float64 `json:"year_score,omitempty"    db:"year_score"`
	MileageScore *float64 `json:"mileage_score,omitempty" db:"mileage_score"`
	ScoreRaw     *float64 `json:"score_raw,omitempty"     db:"score_raw"`
	Score        *int     `json:"score,omitempty"         db:"score"`

	// Timestamps
	FetchedAt time.Time `json:"fetched_at" db:"fetched_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Attributes returns the scoring inputs of the listing, keyed by its
// storage ID.
func (l *Listing) Attributes() ListingAttributes {
	return ListingAttributes{
		ID:             l.ID,
		Price:          l.Price,
		ModelYear:      l.ModelYear,
		Mileage:        l.Mileage,
		ConditionText:  l.ConditionText,
		ConditionScore: l.ConditionScore,
	}
}

// GetScore returns the composite score, satisfying the analytics input.
func (l *Listing) GetScore() *int {
	return l.Score
}

// ListingPatch is a typed partial update. Nil fields are left unchanged.
type ListingPatch struct {
	Title          *string  `json:"title,omitempty"`
	Price          *float64 `json:"price,omitempty"           doc:"Price in DKK"                          minimum:"0"`
	ModelYear      *int     `json:"model_year,omitempty"      doc:"Model year"                            minimum:"1980" maximum:"2030"`
	Mileage        *int     `json:"mileage,omitempty"         doc:"Kilometers driven"                     minimum:"0"`
	ConditionText  *string  `json:"condition_text,omitempty"  doc:"Free-text condition description"`
	ConditionScore *float64 `json:"condition_score,omitempty" doc:"Precomputed condition score in [0, 1]" minimum:"0" maximum:"1"`
	ConditionLabel *string  `json:"condition_label,omitempty"`
	Brand          *string  `json:"brand,omitempty"`
	Model          *string  `json:"model,omitempty"`
	FuelType       *string  `json:"fuel_type,omitempty"`
	Transmission   *string  `json:"transmission,omitempty"`
	BodyType       *string  `json:"body_type,omitempty"`
	Location       *string  `json:"location,omitempty"`
	DealerName     *string  `json:"dealer_name,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p *ListingPatch) Empty() bool {
	return p.Title == nil && p.Price == nil && p.ModelYear == nil &&
		p.Mileage == nil && p.ConditionText == nil && p.ConditionScore == nil &&
		p.ConditionLabel == nil && p.Brand == nil && p.Model == nil &&
		p.FuelType == nil && p.Transmission == nil && p.BodyType == nil &&
		p.Location == nil && p.DealerName == nil
}

// IngestListing is one extracted listing as delivered by the extraction
// collaborator: scoring attributes keyed by URL plus descriptive metadata.
type IngestListing struct {
	URL           string   `json:"url"                      doc:"Listing URL (stable external key)" minLength:"1"`
	Title         string   `json:"title,omitempty"          doc:"Listing title"`
	Price         *float64 `json:"price,omitempty"          doc:"Price in DKK"                      minimum:"0"`
	ModelYear     *int     `json:"model_year,omitempty"     doc:"Model year"                        minimum:"1980" maximum:"2030"`
	Mileage       *int     `json:"mileage,omitempty"        doc:"Kilometers driven"                 minimum:"0"`
	ConditionText *string  `json:"condition_text,omitempty" doc:"Free-text condition description"`
	Brand         string   `json:"brand,omitempty"`
	Model         string   `json:"model,omitempty"`
	FuelType      string   `json:"fuel_type,omitempty"`
	Transmission  string   `json:"transmission,omitempty"`
	BodyType      string   `json:"body_type,omitempty"`
	Location      string   `json:"location,omitempty"`
	DealerName    string   `json:"dealer_name,omitempty"`
}

// ToListing converts the ingested record into a persistable listing.
func (in *IngestListing) ToListing() *Listing {
	return &Listing{
		URL:           in.URL,
		Title:         in.Title,
		Price:         in.Price,
		ModelYear:     in.ModelYear,
		Mileage:       in.Mileage,
		ConditionText: in.ConditionText,
		Brand:         in.Brand,
		Model:         in.Model,
		FuelType:      in.FuelType,
		Transmission:  in.Transmission,
		BodyType:      in.BodyType,
		Location:      in.Location,
		DealerName:    in.DealerName,
	}
}

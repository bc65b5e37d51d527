// Package main seeds a local car-deal-finder server with listings for
// development. It stands in for the extraction side: listings come from a
// JSON fixture or are generated, and are submitted through the ingest API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	apiclient "github.com/donaldgifford/car-deal-finder/internal/api/client"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// maxBatch matches the ingest endpoint's per-request limit.
const maxBatch = 1000

var conditionTexts = []string{
	"Bilen er i topstand og nysynet",
	"Pæn bil men med rust",
	"Velholdt, ingen rust, ny kobling",
	"Trænger til en kærlig hånd, rust i bunden",
	"Kører fint, men motorproblemer ved koldstart",
	"Fremstår som ny",
	"Sælges som defekt",
	"",
}

var fuelTypes = []string{"Benzin", "Diesel", "El"}

var locations = []string{"Aarhus", "København", "Odense", "Aalborg", "Esbjerg", "Vejle"}

func main() {
	server := flag.String("server", "http://localhost:8000", "API server URL")
	fixture := flag.String("fixture", "", "JSON fixture of listings to submit (default: generate)")
	count := flag.Int("count", 50, "number of listings to generate")
	seed := flag.Uint64("seed", 1, "random seed for generated listings")
	batch := flag.Int("batch", 100, "listings per ingest request")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var listings []domain.IngestListing
	if *fixture != "" {
		var err error
		listings, err = loadFixture(*fixture)
		if err != nil {
			logger.Error("failed to load fixture", "path", *fixture, "error", err)
			os.Exit(1)
		}
		logger.Info("loaded fixture", "listings", len(listings))
	} else {
		listings = generate(rand.New(rand.NewPCG(*seed, *seed)), *count)
		logger.Info("generated listings", "listings", len(listings), "seed", *seed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c := apiclient.New(*server)
	for _, b := range batches(listings, *batch) {
		resp, err := c.Ingest(ctx, b)
		if err != nil {
			logger.Error("ingest failed", "error", err)
			os.Exit(1)
		}
		logger.Info("ingested batch",
			"received", resp.Received,
			"stored", resp.Stored,
			"failed", resp.Failed,
			"scored", resp.Scored,
		)
		for _, e := range resp.Errors {
			logger.Warn("listing rejected", "error", e)
		}
	}
}

func loadFixture(path string) ([]domain.IngestListing, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var listings []domain.IngestListing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return listings, nil
}

// generate builds n plausible Fiat Panda listings. Roughly one in ten
// misses one scoring input so the neutral defaults get exercised.
func generate(r *rand.Rand, n int) []domain.IngestListing {
	out := make([]domain.IngestListing, 0, n)
	for i := range n {
		year := 2004 + r.IntN(20)
		age := 2025 - year
		mileage := age*12000 + r.IntN(40000)
		price := max(float64((140000-age*7000+r.IntN(20000))/100*100), 9000)
		text := conditionTexts[r.IntN(len(conditionTexts))]

		l := domain.IngestListing{
			URL:          fmt.Sprintf("https://www.bilbasen.dk/brugt/bil/fiat/panda/seed-%d", i),
			Title:        fmt.Sprintf("Fiat Panda %d", year),
			Price:        &price,
			ModelYear:    &year,
			Mileage:      &mileage,
			Brand:        "Fiat",
			Model:        "Panda",
			FuelType:     fuelTypes[r.IntN(len(fuelTypes))],
			Transmission: "Manuel",
			Location:     locations[r.IntN(len(locations))],
		}
		if text != "" {
			l.ConditionText = &text
		}

		switch r.IntN(30) {
		case 0:
			l.Price = nil
		case 1:
			l.ModelYear = nil
		case 2:
			l.Mileage = nil
		}
		out = append(out, l)
	}
	return out
}

// batches splits listings into chunks of at most size (capped at maxBatch).
func batches(listings []domain.IngestListing, size int) [][]domain.IngestListing {
	if size <= 0 || size > maxBatch {
		size = maxBatch
	}
	var out [][]domain.IngestListing
	for start := 0; start < len(listings); start += size {
		end := min(start+size, len(listings))
		out = append(out, listings[start:end])
	}
	return out
}

package main

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

func TestLoadFixture(t *testing.T) {
	listings, err := loadFixture(filepath.Join("testdata", "listings.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	if len(listings) != 3 {
		t.Fatalf("len=%d, want 3", len(listings))
	}
	if listings[2].Mileage != nil {
		t.Errorf("fixture-3 mileage=%v, want nil", *listings[2].Mileage)
	}
	if listings[0].ConditionText == nil || *listings[0].ConditionText != "Pæn bil men med rust" {
		t.Errorf("fixture-1 condition text not loaded")
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := loadFixture(filepath.Join("testdata", "missing.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestGenerate(t *testing.T) {
	listings := generate(rand.New(rand.NewPCG(7, 7)), 200)
	if len(listings) != 200 {
		t.Fatalf("len=%d, want 200", len(listings))
	}

	urls := make(map[string]bool, len(listings))
	for i := range listings {
		l := &listings[i]
		if l.URL == "" || urls[l.URL] {
			t.Fatalf("listing %d: empty or duplicate url %q", i, l.URL)
		}
		urls[l.URL] = true

		if l.Price != nil && *l.Price < 9000 {
			t.Errorf("listing %d: price %v below floor", i, *l.Price)
		}
		if l.ModelYear != nil && (*l.ModelYear < 2004 || *l.ModelYear > 2023) {
			t.Errorf("listing %d: model year %d out of range", i, *l.ModelYear)
		}
		if l.Mileage != nil && *l.Mileage < 0 {
			t.Errorf("listing %d: negative mileage", i)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(rand.New(rand.NewPCG(3, 3)), 20)
	b := generate(rand.New(rand.NewPCG(3, 3)), 20)
	for i := range a {
		if a[i].URL != b[i].URL || a[i].Title != b[i].Title {
			t.Fatalf("listing %d differs between runs with the same seed", i)
		}
	}
}

func TestBatches(t *testing.T) {
	listings := make([]domain.IngestListing, 250)

	tests := []struct {
		name      string
		size      int
		wantSizes []int
	}{
		{name: "even split", size: 125, wantSizes: []int{125, 125}},
		{name: "remainder", size: 100, wantSizes: []int{100, 100, 50}},
		{name: "zero uses max", size: 0, wantSizes: []int{250}},
		{name: "above max is capped", size: 5000, wantSizes: []int{250}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := batches(listings, tt.size)
			if len(got) != len(tt.wantSizes) {
				t.Fatalf("batches=%d, want %d", len(got), len(tt.wantSizes))
			}
			for i, b := range got {
				if len(b) != tt.wantSizes[i] {
					t.Errorf("batch %d size=%d, want %d", i, len(b), tt.wantSizes[i])
				}
			}
		})
	}

	if got := batches(nil, 10); len(got) != 0 {
		t.Errorf("nil input gave %d batches", len(got))
	}
}

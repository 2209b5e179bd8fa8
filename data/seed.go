package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yml
var seedFile []byte

// SeedListing is one catalog entry of the embedded seed file.
type SeedListing struct {
	Title      string  `yaml:"title"`
	CourseCode string  `yaml:"course_code"`
	Price      float64 `yaml:"price"`
	Seller     string  `yaml:"seller"`
}

// SeedListings decodes the embedded seed catalog.
func SeedListings() ([]SeedListing, error) {
	return ParseSeed(seedFile)
}

// ParseSeed decodes a seed document of the form {listings: [...]}.
func ParseSeed(b []byte) ([]SeedListing, error) {
	var doc struct {
		Listings []SeedListing `yaml:"listings"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return doc.Listings, nil
}

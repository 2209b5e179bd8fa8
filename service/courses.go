package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/emzola/bookxchange/data"
)

// CommonCourses are always offered as course code suggestions.
var CommonCourses = []string{"CS134", "MATH141", "PHYS151", "CHEM111", "ENGL101", "HIST201"}

type courses interface {
	SuggestCourses(q string) ([]string, error)
}

// SuggestCourses service returns known course codes containing q, sorted.
func (s *service) SuggestCourses(q string) ([]string, error) {
	listings, err := s.repo.GetAllListings()
	if err != nil {
		return nil, err
	}
	codes := slices.Clone(CommonCourses)
	for _, l := range listings {
		codes = append(codes, l.CourseCode)
	}
	slices.Sort(codes)
	codes = slices.Compact(codes)

	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// SeedCatalog loads the embedded seed listings when the catalog is configured
// to be seeded, returning how many were added.
func (s *service) SeedCatalog() (int, error) {
	if !s.config.Catalog.Seed {
		return 0, nil
	}
	seed, err := data.SeedListings()
	if err != nil {
		return 0, err
	}
	for _, sl := range seed {
		listing := data.Listing{
			Title:      sl.Title,
			CourseCode: strings.ToUpper(sl.CourseCode),
			Price:      sl.Price,
			Seller:     sl.Seller,
		}
		if err := s.repo.CreateListing(&listing); err != nil {
			return 0, fmt.Errorf("seeding %q: %w", sl.Title, err)
		}
	}
	return len(seed), nil
}

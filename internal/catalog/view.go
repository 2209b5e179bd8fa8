// Package catalog derives the filtered, sorted and favourite-annotated view of
// the listing collection. Every function here is pure: inputs are never
// modified and equal inputs give equal outputs.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/emzola/bookxchange/data"
)

// SortKey selects the ordering of a projection.
type SortKey string

const (
	SortTitle  SortKey = "title"
	SortPrice  SortKey = "price"
	SortCourse SortKey = "course"
)

// SortKeys lists the accepted sort keys.
var SortKeys = []SortKey{SortTitle, SortPrice, SortCourse}

// Query holds the view inputs other than the collection and favourites.
type Query struct {
	Search   string
	Sort     SortKey
	MinPrice float64
	MaxPrice float64
	// Course, when non-empty, must equal a listing's course code exactly.
	Course string
}

// DefaultQuery matches everything, sorted by title.
func DefaultQuery() Query {
	return Query{Sort: SortTitle, MinPrice: 0, MaxPrice: math.Inf(1)}
}

// Entry is a listing annotated with the viewer's favourite flag.
type Entry struct {
	data.Listing
	Favourite bool `json:"favourite"`
}

// Project filters, sorts and annotates listings.
func Project(listings []data.Listing, q Query, favourites Favourites) []Entry {
	sorted := Sort(Filter(listings, q), q.Sort)
	entries := make([]Entry, len(sorted))
	for i, l := range sorted {
		entries[i] = Entry{Listing: l, Favourite: favourites.Has(l.ID)}
	}
	return entries
}

// Filter returns, in input order, the listings matched by q.
func Filter(listings []data.Listing, q Query) []data.Listing {
	out := make([]data.Listing, 0, len(listings))
	for _, l := range listings {
		if q.Search != "" && !matchesSearch(l, q.Search) {
			continue
		}
		if l.Price < q.MinPrice || l.Price > q.MaxPrice {
			continue
		}
		if q.Course != "" && l.CourseCode != q.Course {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Sort returns a stably sorted copy of listings. Unknown keys sort by title.
func Sort(listings []data.Listing, key SortKey) []data.Listing {
	out := make([]data.Listing, len(listings))
	copy(out, listings)
	var less func(a, b data.Listing) bool
	switch key {
	case SortPrice:
		less = func(a, b data.Listing) bool { return a.Price < b.Price }
	case SortCourse:
		less = func(a, b data.Listing) bool { return a.CourseCode < b.CourseCode }
	default:
		less = func(a, b data.Listing) bool { return a.Title < b.Title }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func matchesSearch(l data.Listing, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.CourseCode), q) ||
		strings.Contains(strings.ToLower(l.Seller), q)
}

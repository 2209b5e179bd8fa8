package catalog

import (
	"math"
	"testing"

	"github.com/emzola/bookxchange/data"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleListings() []data.Listing {
	return []data.Listing{
		{ID: 1, Title: "Introduction to Computer Science", CourseCode: "CS134", Price: 49.99, Seller: "Alice Johnson"},
		{ID: 2, Title: "Data Structures and Algorithms", CourseCode: "CS136", Price: 39.99, Seller: "Bob Smith"},
		{ID: 3, Title: "Calculus I", CourseCode: "MATH141", Price: 65.00, Seller: "Carol Davis"},
		{ID: 4, Title: "Algorithms", CourseCode: "CS136", Price: 39.99, Seller: "Dana Calvert"},
		{ID: 5, Title: "calculus workbook", CourseCode: "MATH141", Price: 12.00, Seller: "Eve"},
	}
}

func ids(entries []Entry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestProjectSearch(t *testing.T) {
	listings := sampleListings()
	tests := []struct {
		name   string
		search string
		want   []int64
	}{
		{"empty matches all", "", []int64{4, 3, 2, 1, 5}},
		{"title case-insensitive", "calc", []int64{3, 5}},
		{"course code", "cs13", []int64{4, 2, 1}},
		{"seller", "smith", []int64{2}},
		{"seller substring", "calv", []int64{4}},
		{"no match", "zzz", []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := DefaultQuery()
			q.Search = tt.search
			got := ids(Project(listings, q, nil))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Project() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjectPriceRange(t *testing.T) {
	listings := []data.Listing{{ID: 3, Title: "Calculus I", CourseCode: "MATH141", Price: 65.00, Seller: "Carol Davis"}}

	q := DefaultQuery()
	q.MinPrice, q.MaxPrice = 0, 50
	assert.Empty(t, Project(listings, q, nil))

	q.MinPrice, q.MaxPrice = 60, 70
	assert.Len(t, Project(listings, q, nil), 1)

	q.MinPrice, q.MaxPrice = 65, 65
	assert.Len(t, Project(listings, q, nil), 1, "bounds are inclusive")
}

func TestProjectCourseFilterIsExact(t *testing.T) {
	q := DefaultQuery()
	q.Course = "CS136"
	assert.Equal(t, []int64{4, 2}, ids(Project(sampleListings(), q, nil)))

	q.Course = "cs136"
	assert.Empty(t, Project(sampleListings(), q, nil))

	q.Course = "CS13"
	assert.Empty(t, Project(sampleListings(), q, nil))
}

func TestSortIsStable(t *testing.T) {
	listings := sampleListings()

	byPrice := Sort(listings, SortPrice)
	assert.Equal(t, []int64{5, 2, 4, 1, 3}, listingIDs(byPrice), "equal prices keep insertion order")

	byCourse := Sort(listings, SortCourse)
	assert.Equal(t, []int64{1, 2, 4, 3, 5}, listingIDs(byCourse))

	byTitle := Sort(listings, SortTitle)
	assert.Equal(t, []int64{4, 3, 2, 1, 5}, listingIDs(byTitle), "title order is case-sensitive")

	unknown := Sort(listings, SortKey("seller"))
	assert.Equal(t, listingIDs(byTitle), listingIDs(unknown))
}

func listingIDs(listings []data.Listing) []int64 {
	out := make([]int64, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestProjectIsPure(t *testing.T) {
	listings := sampleListings()
	before := sampleListings()
	q := Query{Search: "c", Sort: SortPrice, MinPrice: 10, MaxPrice: math.Inf(1)}
	favs := Favourites{}.With(3)

	first := Project(listings, q, favs)
	second := Project(listings, q, favs)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("projection not deterministic (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(before, listings); diff != "" {
		t.Errorf("source collection mutated (-before +after):\n%s", diff)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	q := Query{Search: "cs", MinPrice: 40, MaxPrice: 100, Sort: SortTitle}
	once := Filter(sampleListings(), q)
	twice := Filter(once, q)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Filter not idempotent (-once +twice):\n%s", diff)
	}
}

func TestProjectFavourites(t *testing.T) {
	favs := Favourites{}.With(2).With(5)
	entries := Project(sampleListings(), DefaultQuery(), favs)
	for _, e := range entries {
		assert.Equal(t, e.ID == 2 || e.ID == 5, e.Favourite, "listing %d", e.ID)
	}
}

func TestFavouritesCopyOnWrite(t *testing.T) {
	var empty Favourites
	assert.False(t, empty.Has(1))

	one := empty.With(1)
	assert.True(t, one.Has(1))
	assert.False(t, empty.Has(1))

	none := one.Without(1)
	assert.False(t, none.Has(1))
	assert.True(t, one.Has(1), "Without must not modify the receiver")

	assert.NotNil(t, empty.Without(7))
}

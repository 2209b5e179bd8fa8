package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityFor(t *testing.T) {
	for u := MinUrgency; u <= MaxUrgency; u++ {
		p := PriorityFor(u)
		switch {
		case u <= 3:
			assert.Equal(t, Priority{"High Priority", BucketHigh}, p, "urgency %d", u)
		case u <= 7:
			assert.Equal(t, Priority{"Medium Priority", BucketMedium}, p, "urgency %d", u)
		default:
			assert.Equal(t, Priority{"Low Priority", BucketLow}, p, "urgency %d", u)
		}
	}
}

func TestStrings(t *testing.T) {
	l := Listing{Title: "Intro to CS", CourseCode: "CS134", Price: 49.99, Seller: "Alice"}
	assert.Equal(t, "Intro to CS ($49.99) - Course: CS134, Seller: Alice", l.String())

	r := Request{Title: "Calculus I", Requester: "Dan", Urgency: 2}
	assert.Equal(t, "Calculus I (Urgency: 2) - Requested by: Dan", r.String())
}

func TestRequestJSONCarriesPriority(t *testing.T) {
	b, err := json.Marshal(Request{ID: 7, Title: "Calculus I", Requester: "Dan", Urgency: 9})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "Low Priority", got["priority"])
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "Dan", got["requester"])

	var back Request
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 9, back.Urgency)
}

func TestSeedListings(t *testing.T) {
	listings, err := SeedListings()
	require.NoError(t, err)
	require.Len(t, listings, 25)
	assert.Equal(t, SeedListing{Title: "Calculus I", CourseCode: "MATH141", Price: 65, Seller: "Carol Davis"}, listings[2])
	for _, l := range listings {
		assert.Positive(t, l.Price, l.Title)
	}

	_, err = ParseSeed([]byte("listings: [oops"))
	assert.Error(t, err)
}

package clients

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emzola/bookxchange/config"
	"github.com/emzola/bookxchange/data/dto"
	"github.com/emzola/bookxchange/handler"
	"github.com/emzola/bookxchange/internal/catalog"
	"github.com/emzola/bookxchange/internal/jsonlog"
	"github.com/emzola/bookxchange/repository"
	"github.com/emzola/bookxchange/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	var cfg config.Config
	cfg.Server.BasePath = "/api"
	logger := jsonlog.New(io.Discard, jsonlog.LevelInfo)
	cache := ttlcache.New(ttlcache.WithTTL[string, catalog.Favourites](time.Minute))
	svc := service.New(cfg, logger, repository.New(), cache)
	ts := httptest.NewServer(handler.New(cfg, logger, svc).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestClientRoundTrip(t *testing.T) {
	ts := newTestAPI(t)
	ctx := context.Background()
	c := New(ts.URL + "/api/")

	listing, err := c.AddBook(ctx, dto.CreateListingRequestBody{Title: "Calculus I", CourseCode: "math141", Price: "65", Seller: "Carol"})
	require.NoError(t, err)
	assert.Equal(t, "MATH141", listing.CourseCode)
	assert.NotEmpty(t, c.Session(), "server-minted session is kept")

	got, err := c.GetBook(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.Title, got.Title)

	require.NoError(t, c.FavouriteBook(ctx, listing.ID))
	entries, err := c.ListBooks(ctx, dto.QsListListings{Sort: "price", MaxPrice: math.Inf(1)})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Favourite)

	entries, err = c.ListBooks(ctx, dto.QsListListings{MinPrice: 70, MaxPrice: math.Inf(1)})
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = c.ListBooks(ctx, dto.QsListListings{MaxPrice: 0})
	require.NoError(t, err)
	assert.Empty(t, entries, "zero is an upper bound, not a missing one")

	require.NoError(t, c.UnfavouriteBook(ctx, listing.ID))

	found, err := c.SearchBooks(ctx, "calc")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	urgency := 2
	request, err := c.AddRequest(ctx, dto.CreateRequestRequestBody{Title: "calculus i", Requester: "Dan", Urgency: &urgency})
	require.NoError(t, err)
	assert.Equal(t, "High Priority", request.Priority().Label)

	requests, err := c.ListRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	courses, err := c.Courses(ctx, "math1")
	require.NoError(t, err)
	assert.Equal(t, []string{"MATH141"}, courses)

	results, err := c.ProcessRequests(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0], "Matched:")

	assert.Error(t, c.DeleteBook(ctx, listing.ID), "matched listing is gone")
}

func TestClientErrors(t *testing.T) {
	ts := newTestAPI(t)
	ctx := context.Background()
	c := New(ts.URL+"/api", WithSession("s1"))
	assert.Equal(t, "s1", c.Session())

	_, err := c.AddBook(ctx, dto.CreateListingRequestBody{Title: "Calculus I", CourseCode: "MATH141", Price: "free", Seller: "Carol"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Please enter a valid price", Describe(err))
	assert.Equal(t, "Please enter a valid price", apiErr.Fields["form"])

	err = c.DeleteRequest(ctx, 42)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "the requested resource could not be found", Describe(err))

	_, err = c.ListBooks(ctx, dto.QsListListings{Sort: "seller", MaxPrice: math.Inf(1)})
	assert.Equal(t, "sort: invalid sort value", Describe(err))

	_, err = c.ListBooks(ctx, dto.QsListListings{MinPrice: -5, MaxPrice: math.Inf(1)})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "min_price")
}

func TestDescribe(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := New(url).ListRequests(context.Background())
	assert.Equal(t, MsgUnreachable, Describe(err))

	assert.Equal(t, MsgUnexpected, Describe(errors.New("boom")))
	assert.Equal(t, MsgServerError, Describe(&APIError{Status: 500}))
	assert.Equal(t, "", Describe(nil))
}

func TestDescribeNonEnvelopeErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{"plain text", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
		}, "Bad Gateway"},
		{"json string", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			io.WriteString(w, `"maintenance window"`)
		}, "maintenance window"},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, MsgServerError},
		{"envelope without message", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"error": ""}`)
		}, MsgServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			_, err := New(ts.URL).ListRequests(context.Background())
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, Describe(err))
		})
	}
}

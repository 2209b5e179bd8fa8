package cli

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emzola/bookxchange/config"
	"github.com/emzola/bookxchange/handler"
	"github.com/emzola/bookxchange/internal/catalog"
	"github.com/emzola/bookxchange/internal/jsonlog"
	"github.com/emzola/bookxchange/repository"
	"github.com/emzola/bookxchange/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) string {
	t.Helper()
	var cfg config.Config
	cfg.Server.BasePath = "/api"
	logger := jsonlog.New(io.Discard, jsonlog.LevelInfo)
	cache := ttlcache.New(ttlcache.WithTTL[string, catalog.Favourites](time.Minute))
	svc := service.New(cfg, logger, repository.New(), cache)
	ts := httptest.NewServer(handler.New(cfg, logger, svc).Routes())
	t.Cleanup(ts.Close)
	return ts.URL + "/api"
}

func run(t *testing.T, apiURL string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--api-url", apiURL, "--no-wait", "--session", "cli-test"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestBooksAddAndList(t *testing.T) {
	api := newTestAPI(t)

	out, _, err := run(t, api, "books", "add", "--title", "Calculus I", "--course", "math141", "--price", "65", "--seller", "Carol Davis")
	require.NoError(t, err)
	assert.Contains(t, out, "Book added successfully!")
	assert.Contains(t, out, "Calculus I ($65.00) - Course: MATH141, Seller: Carol Davis")
	assert.Contains(t, out, "Available books")

	_, _, err = run(t, api, "books", "add", "--title", "Physics")
	require.Error(t, err)
	assert.Equal(t, "Please fill in all fields", err.Error())

	_, _, err = run(t, api, "books", "add", "--title", "Physics", "--course", "PHYS151", "--price", "-3", "--seller", "David")
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid price", err.Error())

	out, _, err = run(t, api, "books", "list", "--sort", "price")
	require.NoError(t, err)
	assert.Contains(t, out, "MATH141")
	assert.Contains(t, out, "$65.00")

	out, _, err = run(t, api, "books", "list", "--max-price", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "No books found.")

	out, _, err = run(t, api, "books", "list", "--max-price", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No books found.")
	assert.NotContains(t, out, "Calculus I")

	_, _, err = run(t, api, "books", "list", "--min-price=-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_price")

	_, _, err = run(t, api, "books", "list", "--sort", "seller")
	require.Error(t, err)

	out, _, err = run(t, api, "books", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Carol Davis")

	out, _, err = run(t, api, "books", "search", "calc")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculus I")
}

func TestBooksFavourite(t *testing.T) {
	api := newTestAPI(t)
	_, _, err := run(t, api, "books", "add", "--title", "Calculus I", "--course", "MATH141", "--price", "65", "--seller", "Carol")
	require.NoError(t, err)

	_, _, err = run(t, api, "books", "favourite", "1")
	require.NoError(t, err)
	out, _, err := run(t, api, "books", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "★")

	_, _, err = run(t, api, "books", "unfavourite", "1")
	require.NoError(t, err)
	out, _, err = run(t, api, "books", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "★")

	_, _, err = run(t, api, "books", "favourite", "abc")
	assert.Error(t, err)
}

func TestRequestsLifecycle(t *testing.T) {
	api := newTestAPI(t)
	_, _, err := run(t, api, "books", "add", "--title", "Calculus I", "--course", "MATH141", "--price", "65", "--seller", "Carol")
	require.NoError(t, err)

	out, _, err := run(t, api, "requests", "add", "--title", "Organic Chemistry", "--requester", "Eve", "--urgency", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Book request submitted successfully!")
	assert.Contains(t, out, "Low Priority")

	out, _, err = run(t, api, "books", "request", "1", "--requester", "Dan", "--urgency", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculus I (Urgency: 2) - Requested by: Dan")

	_, _, err = run(t, api, "requests", "add", "--title", "X", "--requester", "Y", "--urgency", "0")
	require.Error(t, err)
	assert.Equal(t, "Urgency must be between 1 and 10", err.Error())

	out, _, err = run(t, api, "requests", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "High Priority")
	assert.Contains(t, out, "Low Priority")

	out, errOut, err := run(t, api, "requests", "process")
	require.NoError(t, err)
	assert.Contains(t, out, "Matched: Calculus I (Urgency: 2)")
	assert.Contains(t, errOut, "No available book for: Organic Chemistry")

	out, _, err = run(t, api, "requests", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No pending requests.")

	_, _, err = run(t, api, "requests", "remove", "1")
	assert.Error(t, err)
}

func TestCourses(t *testing.T) {
	api := newTestAPI(t)
	out, _, err := run(t, api, "courses", "cs")
	require.NoError(t, err)
	assert.Equal(t, "CS134\n", out)
}

func TestAPIURLFromEnvironment(t *testing.T) {
	api := newTestAPI(t)
	t.Setenv("BOOKX_API_URL", api)

	var out bytes.Buffer
	cmd := NewRootCmd(&out, io.Discard)
	cmd.SetArgs([]string{"courses", "hist"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "HIST201\n", out.String())
}

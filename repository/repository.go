package repository

import (
	"sync"
	"time"

	"github.com/emzola/bookxchange/data"
)

type Repository interface {
	listings
	requests
	Update(fn func(c *Collections) error) error
}

// Collections is a working copy of both catalog collections handed to Update.
type Collections struct {
	Listings []data.Listing
	Requests []data.Request
}

// Repository defines the app's in-memory catalog store.
type repository struct {
	mu            sync.RWMutex
	listings      []data.Listing
	requests      []data.Request
	nextListingID int64
	nextRequestID int64
	now           func() time.Time
}

// New creates a new, empty instance of Repository.
func New() *repository {
	return &repository{
		nextListingID: 1,
		nextRequestID: 1,
		now:           time.Now,
	}
}

// Update runs fn over a copy of both collections while holding the write lock.
// The copy replaces the stored collections only when fn returns nil.
func (r *repository) Update(fn func(c *Collections) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := &Collections{
		Listings: clone(r.listings),
		Requests: clone(r.requests),
	}
	if err := fn(c); err != nil {
		return err
	}
	r.listings = c.Listings
	r.requests = c.Requests
	return nil
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

package repository

import (
	"github.com/emzola/bookxchange/data"
)

type listings interface {
	CreateListing(listing *data.Listing) error
	GetListing(ID int64) (*data.Listing, error)
	GetAllListings() ([]data.Listing, error)
	DeleteListing(ID int64) error
}

// CreateListing assigns the next id and creation time, then appends the listing.
func (r *repository) CreateListing(listing *data.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing.ID = r.nextListingID
	listing.CreatedAt = r.now()
	r.nextListingID++
	r.listings = append(r.listings, *listing)
	return nil
}

// GetListing retrieves a listing by its ID.
func (r *repository) GetListing(ID int64) (*data.Listing, error) {
	if ID < 1 {
		return nil, ErrRecordNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.listings {
		if l.ID == ID {
			return &l, nil
		}
	}
	return nil, ErrRecordNotFound
}

// GetAllListings returns a copy of every listing in insertion order.
func (r *repository) GetAllListings() ([]data.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.listings), nil
}

// DeleteListing removes a listing by its ID.
func (r *repository) DeleteListing(ID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.listings {
		if l.ID == ID {
			r.listings = append(r.listings[:i:i], r.listings[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

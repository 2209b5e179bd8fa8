package service

import (
	"github.com/emzola/bookxchange/internal/catalog"
	"github.com/jellydator/ttlcache/v3"
)

type favourites interface {
	FavouriteListing(session string, listingID int64) error
	UnfavouriteListing(session string, listingID int64) error
}

// FavouriteListing service adds a listing to the session's favourites.
func (s *service) FavouriteListing(session string, listingID int64) error {
	if _, err := s.GetListing(listingID); err != nil {
		return err
	}
	s.favMu.Lock()
	defer s.favMu.Unlock()
	s.favourites.Set(session, s.sessionFavourites(session).With(listingID), ttlcache.DefaultTTL)
	return nil
}

// UnfavouriteListing service removes a listing from the session's favourites.
func (s *service) UnfavouriteListing(session string, listingID int64) error {
	if _, err := s.GetListing(listingID); err != nil {
		return err
	}
	s.favMu.Lock()
	defer s.favMu.Unlock()
	s.favourites.Set(session, s.sessionFavourites(session).Without(listingID), ttlcache.DefaultTTL)
	return nil
}

// sessionFavourites returns the stored set for session, or nil.
// Sets are never modified in place so the result is safe to read unlocked.
func (s *service) sessionFavourites(session string) catalog.Favourites {
	if session == "" {
		return nil
	}
	item := s.favourites.Get(session)
	if item == nil {
		return nil
	}
	return item.Value()
}

package service

import (
	"context"
	"errors"

	"github.com/emzola/bookxchange/data"
	"github.com/emzola/bookxchange/data/dto"
	"github.com/emzola/bookxchange/internal/catalog"
	"github.com/emzola/bookxchange/internal/forms"
	"github.com/emzola/bookxchange/internal/validator"
	"github.com/emzola/bookxchange/repository"
)

type listings interface {
	CreateListing(requestBody dto.CreateListingRequestBody) (*data.Listing, error)
	GetListing(listingID int64) (*data.Listing, error)
	ListListings(session string, qs dto.QsListListings) ([]catalog.Entry, error)
	SearchListings(search string) ([]data.Listing, error)
	DeleteListing(listingID int64) error
}

// CreateListing service validates the listing form and stores a new listing.
func (s *service) CreateListing(requestBody dto.CreateListingRequestBody) (*data.Listing, error) {
	form := forms.ListingForm{
		Title:      requestBody.Title,
		CourseCode: requestBody.CourseCode,
		Price:      string(requestBody.Price),
		Seller:     requestBody.Seller,
	}
	v := validator.New()
	listing, _, err := form.Submit(context.Background(), v, s.addListing, 0)
	if err != nil {
		return nil, err
	}
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	return listing, nil
}

func (s *service) addListing(_ context.Context, listing data.Listing) (*data.Listing, error) {
	if err := s.repo.CreateListing(&listing); err != nil {
		return nil, err
	}
	s.logger.PrintInfo("listing created", map[string]string{"listing": listing.String()})
	return &listing, nil
}

// GetListing service returns a listing by its ID.
func (s *service) GetListing(listingID int64) (*data.Listing, error) {
	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return listing, nil
}

// ListListings service returns the catalog view for a session.
func (s *service) ListListings(session string, qs dto.QsListListings) ([]catalog.Entry, error) {
	v := validator.New()
	sortKeys := make([]string, len(catalog.SortKeys))
	for i, k := range catalog.SortKeys {
		sortKeys[i] = string(k)
	}
	if qs.Sort == "" {
		qs.Sort = string(catalog.SortTitle)
	}
	v.Check(validator.PermittedValue(qs.Sort, sortKeys...), "sort", "invalid sort value")
	v.Check(qs.MinPrice >= 0, "min_price", "must not be negative")
	v.Check(qs.MaxPrice >= 0, "max_price", "must not be negative")
	v.Check(qs.MinPrice <= qs.MaxPrice, "min_price", "must not exceed max_price")
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	listings, err := s.repo.GetAllListings()
	if err != nil {
		return nil, err
	}
	q := catalog.Query{
		Search:   qs.Search,
		Sort:     catalog.SortKey(qs.Sort),
		MinPrice: qs.MinPrice,
		MaxPrice: qs.MaxPrice,
		Course:   qs.Course,
	}
	return catalog.Project(listings, q, s.sessionFavourites(session)), nil
}

// SearchListings service returns listings matching search, in title order.
func (s *service) SearchListings(search string) ([]data.Listing, error) {
	listings, err := s.repo.GetAllListings()
	if err != nil {
		return nil, err
	}
	q := catalog.DefaultQuery()
	q.Search = search
	return catalog.Sort(catalog.Filter(listings, q), q.Sort), nil
}

// DeleteListing service removes a listing.
func (s *service) DeleteListing(listingID int64) error {
	err := s.repo.DeleteListing(listingID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

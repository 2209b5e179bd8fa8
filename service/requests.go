package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emzola/bookxchange/data"
	"github.com/emzola/bookxchange/data/dto"
	"github.com/emzola/bookxchange/internal/forms"
	"github.com/emzola/bookxchange/internal/validator"
	"github.com/emzola/bookxchange/repository"
)

type requests interface {
	CreateRequest(requestBody dto.CreateRequestRequestBody) (*data.Request, error)
	GetRequest(requestID int64) (*data.Request, error)
	ListRequests() ([]data.Request, error)
	DeleteRequest(requestID int64) error
	ProcessRequests() ([]string, error)
}

// CreateRequest service validates the request form and stores a new book request.
func (s *service) CreateRequest(requestBody dto.CreateRequestRequestBody) (*data.Request, error) {
	form := forms.NewRequestForm()
	form.Title = requestBody.Title
	form.Requester = requestBody.Requester
	if requestBody.Urgency != nil {
		form.Urgency = *requestBody.Urgency
	}
	v := validator.New()
	request, _, err := form.Submit(context.Background(), v, s.addRequest, 0)
	if err != nil {
		return nil, err
	}
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	return request, nil
}

func (s *service) addRequest(_ context.Context, request data.Request) (*data.Request, error) {
	if err := s.repo.CreateRequest(&request); err != nil {
		return nil, err
	}
	s.logger.PrintInfo("request created", map[string]string{"request": request.String()})
	return &request, nil
}

// GetRequest service returns a book request by its ID.
func (s *service) GetRequest(requestID int64) (*data.Request, error) {
	request, err := s.repo.GetRequest(requestID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return request, nil
}

// ListRequests service returns pending requests in submission order.
func (s *service) ListRequests() ([]data.Request, error) {
	return s.repo.GetAllRequests()
}

// DeleteRequest service removes a pending request.
func (s *service) DeleteRequest(requestID int64) error {
	err := s.repo.DeleteRequest(requestID)
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

// ProcessRequests matches every pending request, most urgent first, against
// the first listing with the same title (case-insensitive). Matched listings
// leave the catalog and the request queue is emptied.
func (s *service) ProcessRequests() ([]string, error) {
	results := []string{}
	err := s.repo.Update(func(c *repository.Collections) error {
		pending := make([]data.Request, len(c.Requests))
		copy(pending, c.Requests)
		// Stable, so equal urgencies keep submission order.
		sort.SliceStable(pending, func(i, j int) bool {
			return pending[i].Urgency < pending[j].Urgency
		})
		for _, req := range pending {
			i := matchListing(c.Listings, req.Title)
			if i < 0 {
				results = append(results, data.UnmatchedPrefix+req.Title)
				continue
			}
			listing := c.Listings[i]
			c.Listings = append(c.Listings[:i:i], c.Listings[i+1:]...)
			results = append(results, fmt.Sprintf("%s%s <-> %s", data.MatchedPrefix, req, listing))
		}
		c.Requests = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, line := range results {
		if strings.HasPrefix(line, data.MatchedPrefix) {
			s.logger.PrintInfo(line, nil)
			continue
		}
		s.logger.PrintWarn(line, nil)
	}
	return results, nil
}

func matchListing(listings []data.Listing, title string) int {
	for i, l := range listings {
		if strings.EqualFold(l.Title, title) {
			return i
		}
	}
	return -1
}

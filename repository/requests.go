package repository

import (
	"github.com/emzola/bookxchange/data"
)

type requests interface {
	CreateRequest(request *data.Request) error
	GetRequest(ID int64) (*data.Request, error)
	GetAllRequests() ([]data.Request, error)
	DeleteRequest(ID int64) error
}

// CreateRequest assigns the next id and creation time, then appends the request.
func (r *repository) CreateRequest(request *data.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request.ID = r.nextRequestID
	request.CreatedAt = r.now()
	r.nextRequestID++
	r.requests = append(r.requests, *request)
	return nil
}

// GetRequest retrieves a book request by its ID.
func (r *repository) GetRequest(ID int64) (*data.Request, error) {
	if ID < 1 {
		return nil, ErrRecordNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.ID == ID {
			return &req, nil
		}
	}
	return nil, ErrRecordNotFound
}

// GetAllRequests returns a copy of every pending request in insertion order.
func (r *repository) GetAllRequests() ([]data.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.requests), nil
}

// DeleteRequest removes the request with the given ID. When no request
// matches, the collection is left unchanged and ErrRecordNotFound is returned.
func (r *repository) DeleteRequest(ID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, req := range r.requests {
		if req.ID == ID {
			r.requests = append(r.requests[:i:i], r.requests[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

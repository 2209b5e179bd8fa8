package service

import (
	"sync"

	"github.com/emzola/bookxchange/config"
	"github.com/emzola/bookxchange/internal/catalog"
	"github.com/emzola/bookxchange/internal/jsonlog"
	"github.com/emzola/bookxchange/repository"
	"github.com/jellydator/ttlcache/v3"
)

type Service interface {
	listings
	requests
	favourites
	courses
	SeedCatalog() (int, error)
}

// Services defines a service layer.
type service struct {
	config     config.Config
	logger     *jsonlog.Logger
	repo       repository.Repository
	favourites *ttlcache.Cache[string, catalog.Favourites]
	// favMu serialises read-modify-write of a session's favourite set.
	favMu sync.Mutex
}

// New creates a new instance of Service.
func New(cfg config.Config, logger *jsonlog.Logger, repo repository.Repository, cache *ttlcache.Cache[string, catalog.Favourites]) *service {
	return &service{
		config:     cfg,
		logger:     logger,
		repo:       repo,
		favourites: cache,
	}
}

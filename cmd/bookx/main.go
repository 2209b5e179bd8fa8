package main

import (
	"os"
	"strconv"

	"github.com/emzola/bookxchange/config"
	"github.com/emzola/bookxchange/handler"
	"github.com/emzola/bookxchange/internal/catalog"
	"github.com/emzola/bookxchange/internal/jsonlog"
	"github.com/emzola/bookxchange/repository"
	"github.com/emzola/bookxchange/service"
	"github.com/jellydator/ttlcache/v3"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	logger  *jsonlog.Logger
	cache   *ttlcache.Cache[string, catalog.Favourites]
	service service.Service
	handler *handler.Handler
}

// @title  bookXchange API
// @version 1.0.0
// @description Textbook exchange marketplace: listings, requests and matching.
// @host localhost:8080
// @BasePath /api
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	logger = jsonlog.New(os.Stdout, jsonlog.ParseLevel(cfg.Log.Level))

	// Session favourites expire with the session
	cache := ttlcache.New(ttlcache.WithTTL[string, catalog.Favourites](cfg.Session.TTL))
	go cache.Start()

	// Application layers
	repo := repository.New()
	svc := service.New(cfg, logger, repo, cache)
	n, err := svc.SeedCatalog()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	if n > 0 {
		logger.PrintInfo("catalog seeded", map[string]string{"listings": strconv.Itoa(n)})
	}

	app := &app{
		config:  cfg,
		logger:  logger,
		cache:   cache,
		service: svc,
		handler: handler.New(cfg, logger, svc),
	}

	// Start HTTP server
	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

// placementd serves the pictograph placement engine over HTTP.
//
// It loads the special-placement reference tree once at startup, builds an
// immutable engine over it, and answers calculate requests with no further
// I/O or locking on the hot path.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/glyphkit/pictograph/placement"
	"github.com/glyphkit/pictograph/special"
)

// Version info (set during build)
var Version = "dev"

func main() {
	configPath := flag.String("config", "placementd.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	// One-time load; the repository and key set are immutable afterwards,
	// which is what makes concurrent Calculate calls lock-free.
	repo, keys, err := loadPlacements(cfg.Placements.Root)
	if err != nil {
		log.Fatalf("placements: %v", err)
	}
	log.Printf("loaded %d placement overrides", repo.Len())

	engine := placement.NewEngine(cfg.Geometry(), repo, keys)
	h := NewHandler(engine, repo, Version)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return !cfg.Server.RequestLogging || c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())

	RegisterRoutes(e, h)

	log.Printf("placementd %s listening on %s", Version, cfg.Server.Listen)
	if err := e.Start(cfg.Server.Listen); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// loadPlacements reads the reference tree, treating an unset root as the
// legal empty-repository state.
func loadPlacements(root string) (*special.Repository, special.KeySet, error) {
	if root == "" {
		repo := special.NewRepository()
		return repo, special.BaseKeys(), nil
	}
	repo, keys, err := special.Load(root)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", root, err)
	}
	return repo, keys, nil
}

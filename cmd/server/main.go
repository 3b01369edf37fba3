package main // Entry point package

import (
	"context"
	"log" // Logging library
	"time"

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/sunnyharvard/sunnyharvard-hw4/internal/config"     // Internal config loader
	"github.com/sunnyharvard/sunnyharvard-hw4/internal/database"   // Database bootstrap
	"github.com/sunnyharvard/sunnyharvard-hw4/internal/handler"    // HTTP handlers
	"github.com/sunnyharvard/sunnyharvard-hw4/internal/repository" // Data access layer
	"github.com/sunnyharvard/sunnyharvard-hw4/internal/router"     // Route registration
)

func main() {
	cfg := config.Load() // Load environment config, resolves the DB path

	db, err := database.Open(cfg.DBPath, cfg.DBReadOnly)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	// Fail fast on a database missing the reference tables or columns
	// instead of discovering it on the first request.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := database.VerifySchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema verification: %v", err)
	}
	cancel()

	cd := &handler.CountyDataHandler{
		ZipRepo:      repository.NewZipCountyRepo(db),
		RankingsRepo: repository.NewRankingsRepo(db),
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, cd)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s, read_only=%t)", addr, cfg.Env, cfg.DBPath, cfg.DBReadOnly)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}

package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"moving-quote-service/internal/adapters/cache"
	"moving-quote-service/internal/adapters/repositories"
	"moving-quote-service/internal/adapters/routing"
	"moving-quote-service/internal/api"
	"moving-quote-service/internal/config"
	"moving-quote-service/internal/platform/db"
	"moving-quote-service/internal/ports"
	"moving-quote-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres caches, ORS routing) behind ports,
// assembles the vendor strategies, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	geocodeTTL := config.GetDuration("GEOCODE_TTL", time.Hour)

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	// The persistent caches are optional: without DATABASE_URL the engine
	// runs on the in-process TTL cache alone.
	var geocodeCache ports.GeocodeCache
	var routeCache ports.RouteCache

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := repositories.InitSchema(pg); err != nil {
			log.Fatal(err)
		}

		geocodeCache = cache.NewPGGeocodeCache(pg)
		routeCache = cache.NewPGRouteCache(pg)
	} else {
		log.Println("DATABASE_URL not set; persistent routing caches disabled")
	}

	memCache := cache.NewMemoryGeocodeCache(geocodeTTL, nil)
	provider, err := routing.NewORSRoutingProvider(orsKey, memCache, geocodeCache, routeCache)
	if err != nil {
		log.Fatal(err)
	}

	cfg := services.DefaultConfig()
	travel := services.NewTravel(provider, cfg.TruckSpeedFactor)
	depots := services.DefaultDepots()

	orchestrator := services.NewOrchestrator(
		services.NewDesertMoving(travel, cfg),
		services.NewSaguaroVanLines(travel, cfg),
		services.NewCopperStateMovers(travel, cfg, depots),
		services.NewValleyHaulAndPack(travel, cfg, depots),
	)

	router := api.NewRouter(orchestrator)

	// Timeouts are tuned for cold-cache quoting (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

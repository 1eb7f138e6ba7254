package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"
	"trip-route-service/internal/adapters/distance"
	"trip-route-service/internal/adapters/repositories"
	"trip-route-service/internal/api"
	"trip-route-service/internal/config"
	"trip-route-service/internal/platform/db"
	"trip-route-service/internal/ports"

	"github.com/joho/godotenv"
)

type catalog interface {
	ports.LocationRepository
	ports.ModeRepository
}

// main is the application composition root.
// It wires concrete adapters (catalog store, haversine distances) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	env := config.Load()

	planner, err := config.LoadPlanner(env.PlannerConfig)
	if err != nil {
		log.Fatal(err)
	}

	repo, closeFn, err := openCatalog(env)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	router := api.NewRouter(repo, repo, distance.NewHaversine(), planner)

	log.Printf("Server listening addr=:%s catalog=%s max_destinations=%d", env.Port, env.DBDriver, planner.MaxDestinations)
	srv := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openCatalog selects the catalog store from DB_DRIVER: "json" reads the
// seed files directly, "sqlite" opens DB_PATH and seeds it on startup for
// local runs, "pgx" opens DATABASE_URL (seeded by dbtool).
func openCatalog(env config.Env) (catalog, func(), error) {
	if env.DBDriver == "json" {
		return repositories.NewJSONCatalogRepository(env.SeedLocationsPath, env.SeedModesPath), func() {}, nil
	}

	dialect, err := repositories.DialectFor(env.DBDriver)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}

	dsn := env.DBPath
	if dialect == repositories.DialectPostgres {
		dsn = env.DatabaseURL
		if dsn == "" {
			return nil, nil, fmt.Errorf("open catalog: DATABASE_URL is required for driver %q", env.DBDriver)
		}
	}

	conn, err := db.Open(string(dialect), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	closeFn := func() { conn.Close() }

	if dialect == repositories.DialectSQLite {
		if err := initAndSeed(conn, dialect, env); err != nil {
			closeFn()
			return nil, nil, err
		}
	}

	return repositories.NewSQLCatalogRepository(conn, dialect), closeFn, nil
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, env config.Env) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, dialect, env.SeedLocationsPath, env.SeedModesPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

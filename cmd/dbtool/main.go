package main

import (
	"database/sql"
	"log"
	"trip-route-service/internal/adapters/repositories"
	"trip-route-service/internal/config"
	"trip-route-service/internal/platform/db"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	env := config.Load()

	dialect, err := repositories.DialectFor(env.DBDriver)
	if err != nil {
		log.Fatal(err)
	}

	dsn := env.DBPath
	if dialect == repositories.DialectPostgres {
		dsn = env.DatabaseURL
		if dsn == "" {
			log.Fatal("DATABASE_URL is required")
		}
	}

	conn, err := db.Open(string(dialect), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := initAndSeed(conn, dialect, env.SeedLocationsPath, env.SeedModesPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, locationsDir, modesPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding catalog locations=%s modes=%s", locationsDir, modesPath)
	if err := repositories.SeedFromJSON(conn, dialect, locationsDir, modesPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}

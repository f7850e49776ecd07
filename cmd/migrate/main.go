package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	"fintrack/internal/config"
	"fintrack/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Standalone migration runner for postgres deployments. The API process can
// migrate on startup with AUTO_MIGRATE=true; this binary exists for CI
// pipelines and operators who migrate before rolling the service.
func main() {
	var (
		status = flag.Bool("status", false, "print current migration version and exit")
		seed   = flag.Bool("seed", false, "load seed data after migrating")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatal("cmd/migrate only supports DB_DRIVER=postgres; sqlite schemas come from AutoMigrate")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("database readiness check failed: %v", err)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatalf("failed to get migration status: %v", err)
		}
		log.Printf("Migration status - Version: %d, Dirty: %v", version, dirty)
		os.Exit(0)
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if *seed {
		os.Setenv("SEED_DATABASE", "true")
		if err := runner.LoadSeeds(); err != nil {
			log.Fatalf("seed loading failed: %v", err)
		}
	}

	log.Println("Migrations complete")
}

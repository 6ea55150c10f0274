package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"policycraft/adapters/postgres"
	"policycraft/internal/config"
	"policycraft/internal/engine"
	"policycraft/internal/errors"
	"policycraft/internal/lexicon"
	"policycraft/internal/migration"
	"policycraft/ui"
)

// initDatabase connects to PostgreSQL and applies migrations
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	literatureRepo, err := postgres.NewLiteratureRepository(context.Background(), db, appConfig.Scoring.LiteratureRefreshInterval)
	if err != nil {
		log.Fatalf("Failed to load literature corpus: %v", err)
	}
	analysisRepo := postgres.NewAnalysisRepository(db)

	analysisEngine := engine.New(lexicon.Default(), appConfig.Scoring, literatureRepo)

	server := ui.NewServer(ui.ServerConfig{
		GinMode:   appConfig.Server.GinMode,
		ExportDir: appConfig.Export.Dir,
	}, analysisEngine, analysisRepo, literatureRepo)

	log.Printf("Starting PolicyCraft server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}

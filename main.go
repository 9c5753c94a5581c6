package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kaushalendrasingh/portfolio-backend/api"
	"github.com/kaushalendrasingh/portfolio-backend/config"
	"github.com/kaushalendrasingh/portfolio-backend/database"
	"github.com/kaushalendrasingh/portfolio-backend/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	if cfg.AdminAPIKey == "" {
		log.Fatal().Msg("ADMIN_API_KEY must be set")
	}

	var db *gorm.DB
	switch cfg.DBDriver {
	case "postgres":
		log.Info().Msg("Connecting to postgres database...")
		db, err = database.OpenPostgres(cfg.DatabaseURL)
	case "sqlite":
		log.Info().Str("path", cfg.DatabaseURL).Msg("Opening sqlite database...")
		db, err = database.OpenSQLite(cfg.DatabaseURL)
	default:
		log.Fatal().Str("driver", cfg.DBDriver).Msg("Unsupported DB_DRIVER")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Error migrating database schema")
	}

	currentDB := database.New(db)

	assets, err := services.NewAssetStore(cfg.AssetRoot)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing asset store")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(cfg, currentDB, assets)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

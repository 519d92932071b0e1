package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/yigit/placementhub/internal/pkg/logger"
	"github.com/yigit/placementhub/internal/server"
)

// @title PlacementHub API
// @version 1.0
// @description API for the campus placement management platform

// @contact.name API Support
// @contact.email support@placementhub.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Optional .env file for local development; real deployments set env vars
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}

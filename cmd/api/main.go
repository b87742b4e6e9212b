package main

import (
	"os"

	"github.com/lramirez/acredita/internal/pkg/logger"
	"github.com/lramirez/acredita/internal/server"
)

// @title Acredita API
// @version 1.0
// @description Backend for outcome assessment surveys: careers, subjects, graduate attributes, rubric criteria and student answers.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token

func main() {
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
}

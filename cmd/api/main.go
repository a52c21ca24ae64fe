package main

import (
	"os"

	"github.com/yigit/recruitment/internal/pkg/logger"
	"github.com/yigit/recruitment/internal/server"
)

// @title Recruitment API
// @version 1.0
// @description API for the recruitment and applicant tracking system
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@recruitmentsystem.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, formatted as "Bearer <token>"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup failures are logged in detail by the bootstrap functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

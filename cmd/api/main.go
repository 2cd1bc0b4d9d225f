package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/sitehub/internal/config"
	"github.com/yigit/sitehub/internal/pkg/logger"
	"github.com/yigit/sitehub/internal/server"
)

// @title GCMS Site API
// @version 1.0
// @description Admin content API for the GCMS college website.

// @contact.name Website Administration
// @contact.email info@gcms.edu.pk

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := flag.String("config", config.GetEnv("CONFIG_PATH", "configs/config.yaml"), "path to the YAML config file")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
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

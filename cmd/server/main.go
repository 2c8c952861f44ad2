package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"category-audit-backend/internal/aecdm"
	"category-audit-backend/internal/config"
	"category-audit-backend/internal/logging"
	"category-audit-backend/internal/middleware"
	"category-audit-backend/internal/routes"
	"category-audit-backend/internal/services/audit"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		logging.Info().Msg("No .env file found, relying on system env")
	}

	cfg := config.Load()
	logging.Init(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	tokens, err := aecdm.NewTokenSource(cfg.AccessToken, cfg.ClientID, cfg.ClientSecret, cfg.TokenEndpoint)
	if err != nil {
		logging.Fatal().Err(err).Msg("could not build APS token source")
	}

	client := aecdm.New(cfg.GraphQLEndpoint, cfg.Region, tokens).WithTimeout(cfg.RequestTimeout)
	auditService := audit.NewService(client, cfg.PageLimit, cfg.DistinctLimit)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, auditService)

	logging.Info().Str("port", cfg.Port).Str("region", cfg.Region).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logging.Fatal().Err(err).Msg("server exited")
	}
}

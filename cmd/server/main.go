package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farmsight/server/internal/api"
	"github.com/farmsight/server/internal/assistant"
	"github.com/farmsight/server/internal/config"
	"github.com/farmsight/server/internal/logger"
	"github.com/farmsight/server/internal/pestdetect"
	"github.com/farmsight/server/internal/repository"
	"github.com/farmsight/server/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.New(cfg.Log)
	defer zl.Sync()

	db, err := config.SetupDatabase(cfg)
	if err != nil {
		zl.Fatal("Failed to set up database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewPostgresRepository(db)

	var completer assistant.Completer
	if cfg.Assistant.APIKey != "" {
		completer = assistant.NewAnthropicCompleter(cfg.Assistant.APIKey, cfg.Assistant.Model)
	} else {
		zl.Warn("No assistant API key configured, chatbot is disabled")
	}

	svc := service.NewDefaultService(repo, completer, zl, service.Options{
		AccessSecret:      cfg.Auth.AccessSecret,
		RefreshSecret:     cfg.Auth.RefreshSecret,
		AccessExpiration:  cfg.Auth.AccessExpiration,
		RefreshExpiration: cfg.Auth.RefreshExpiration,
		BcryptCost:        cfg.Auth.BcryptCost,
	})

	detector := pestdetect.NewClient(cfg.PestDetection.Endpoint, cfg.PestDetection.APIKey)

	handler := api.NewHandler(svc, detector, zl)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.CORSMiddleware(cfg.CORS.AllowOrigin))
	if cfg.RateLimit.Enabled {
		limiter := api.NewRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
		router.Use(api.RateLimitMiddleware(limiter))
	}

	api.SetupValidator()
	handler.SetupRoutes(router)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zl.Info("Starting server", zap.String("addr", addr), zap.String("env", cfg.Server.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		zl.Fatal("Server stopped", zap.Error(err))
	}
}

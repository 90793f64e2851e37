package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swaggo/swag"

	"github.com/sampledata/user-sampler/internal/api"
	"github.com/sampledata/user-sampler/internal/infrastructure/config"
	"github.com/sampledata/user-sampler/pkg/logger"
)

// @title        User Sampler API
// @version      1.0
// @description  Random user generation and canonical JSON codec service.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	if cfg.SwaggerExportPath != "" {
		if err := exportSwagger(cfg.SwaggerExportPath); err != nil {
			log.Fatal().Err(err).Str("path", cfg.SwaggerExportPath).Msg("swagger export failed")
		}
		log.Info().Str("path", cfg.SwaggerExportPath).Msg("swagger document written")
	}

	e := api.NewRouter(cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

// exportSwagger writes the registered OpenAPI document to path.
func exportSwagger(path string) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}

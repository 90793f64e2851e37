package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/sampledata/user-sampler/docs"
	"github.com/sampledata/user-sampler/internal/api/handler"
	"github.com/sampledata/user-sampler/internal/api/middleware"
	"github.com/sampledata/user-sampler/internal/core/service"
	"github.com/sampledata/user-sampler/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddleware("usersampler"))

	// --- Dependencies ---
	samplerService := service.NewSamplerService(cfg.Sampler.MaxDepth, log)
	userHandler := handler.NewUserHandler(samplerService, cfg.Sampler.DefaultDepth)

	// --- Sample & codec routes ---
	e.GET("/v1/users/sample", userHandler.SampleUser)
	e.GET("/v1/admins/sample", userHandler.SampleAdmin)
	e.GET("/v1/moderators/sample", userHandler.SampleModerator)
	e.GET("/v1/basic-users/sample", userHandler.SampleBasicUser)
	e.POST("/v1/users/validate", userHandler.Validate)

	// --- Health probe ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

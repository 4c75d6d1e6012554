// Package app provides router configuration.
package app

import (
	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, cfg config.Config) *RouterComponents {
	var handlerOpts []http.HandlerOption
	if len(cfg.Upload.AllowedExtensions) > 0 {
		handlerOpts = append(handlerOpts, http.WithAllowedExtensions(cfg.Upload.AllowedExtensions))
	}
	if cfg.Upload.MaxBytes > 0 {
		handlerOpts = append(handlerOpts, http.WithMaxUploadBytes(cfg.Upload.MaxBytes))
	}

	handler := http.NewHandler(services.Generator, handlerOpts...)
	healthHandler := http.NewHealthHandler()

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// Package app provides service initialization.
package app

import (
	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Generator service.LabelGenerator
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.LayoutConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.Columns > 0 || cfg.Rows > 0 {
		opts = append(opts, service.WithGridDimensions(cfg.Columns, cfg.Rows))
	}

	generator := service.NewLabelGeneratorService(opts...)

	return &ServiceComponents{
		Generator: generator,
	}
}

package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// LabelRoutes handles label-related route registration.
type LabelRoutes struct {
	handler *Handler
}

// NewLabelRoutes creates a new LabelRoutes instance.
func NewLabelRoutes(handler *Handler) *LabelRoutes {
	return &LabelRoutes{handler: handler}
}

// RegisterRoutes registers the label endpoints.
func (r *LabelRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/labels", r.handler.GenerateLabels)
	rg.POST("/labels/preview", r.handler.PreviewLabels)
}

// GetHandler returns the underlying label handler.
func (r *LabelRoutes) GetHandler() *Handler {
	return r.handler
}

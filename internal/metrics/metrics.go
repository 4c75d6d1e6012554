// Package metrics provides Prometheus metrics collection for the label service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// DocumentBuildsTotal tracks total label document builds.
	DocumentBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "label_document_builds_total",
			Help: "Total number of label document builds",
		},
		[]string{"status"},
	)

	// DocumentBuildDuration tracks label document build duration.
	DocumentBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "label_document_build_duration_seconds",
			Help:    "Label document build duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// LabelCardsPerDocument tracks how many label cards each document carries.
	LabelCardsPerDocument = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "label_cards_per_document",
			Help:    "Number of label cards per generated document",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	// DocumentPagesPerDocument tracks total pages per generated document.
	DocumentPagesPerDocument = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "label_document_pages",
			Help:    "Number of pages per generated document",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50},
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordDocumentBuild records metrics for one document build attempt.
func RecordDocumentBuild(duration time.Duration, status string) {
	DocumentBuildDuration.Observe(duration.Seconds())
	DocumentBuildsTotal.WithLabelValues(status).Inc()
}

// RecordDocumentShape records the card and page counts of a built document.
func RecordDocumentShape(cards, pages int) {
	LabelCardsPerDocument.Observe(float64(cards))
	DocumentPagesPerDocument.Observe(float64(pages))
}

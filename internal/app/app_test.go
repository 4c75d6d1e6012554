//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
		},
		{
			name: "creates router with layout overrides",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Layout: config.LayoutConfig{
					Columns: 4,
					Rows:    6,
				},
			},
		},
		{
			name: "creates router with upload limits",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Upload: config.UploadConfig{
					MaxBytes:          1024,
					AllowedExtensions: []string{".xlsx"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			require.NotNil(t, router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

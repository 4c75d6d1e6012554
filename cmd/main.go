// Package main is the entry point for the label-service application.
//
// @title           Label Service API
// @version         1.0.0
// @description     API for turning an order spreadsheet into a print-ready label sheet.
//
//	Carry-out totals are packed into doubles and singles, expanded into a fixed
//	3x10 label grid across pages, and followed by a dine-in summary table.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/label-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Labels
// @tag.description Label sheet generation operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/label-service/docs" // swagger docs

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

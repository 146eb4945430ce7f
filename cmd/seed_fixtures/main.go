// seed_fixtures genera las tablas sintéticas de inventario y ventas que consume cmd/audit.
// Es independiente del pipeline: se corre antes solo cuando se quieren datos de demo.
//
// Uso: go run ./cmd/seed_fixtures
package main

import (
	"github.com/jhoicas/ghost-audit/internal/infrastructure/fixtures"
	"github.com/jhoicas/ghost-audit/pkg/config"
	"github.com/jhoicas/ghost-audit/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	gen := fixtures.NewGenerator(cfg.Audit.InventoryPath, cfg.Audit.SalesPath)
	if err := gen.Generate(); err != nil {
		log.Fatal().Err(err).Msg("generar fixtures")
	}

	log.Info().
		Str("inventory", cfg.Audit.InventoryPath).
		Str("sales", cfg.Audit.SalesPath).
		Msg("fixtures generados")
}

// audit ejecuta una corrida única del pipeline de auditoría de inventario fantasma:
// lee inventory.csv y sales_transactions.csv, escribe final_audit_report.csv
// e imprime el resumen en stdout. Las rutas se pueden cambiar por variables de entorno.
//
// Uso: go run ./cmd/audit
package main

import (
	"context"
	"os"

	"github.com/jhoicas/ghost-audit/internal/bootstrap"
	"github.com/jhoicas/ghost-audit/internal/interfaces/console"
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
	log.Info().
		Str("inventory", cfg.Audit.InventoryPath).
		Str("sales", cfg.Audit.SalesPath).
		Str("report", cfg.Audit.ReportPath).
		Msg("iniciando auditoría")

	pipeline, err := bootstrap.NewPipeline(cfg.Audit, log)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del pipeline")
	}

	run, err := pipeline.RunAudit.Execute(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("auditoría abortada, no se escribió salida")
		os.Exit(1)
	}

	if err := console.PrintSummary(os.Stdout, run); err != nil {
		log.Error().Err(err).Msg("imprimir resumen")
		os.Exit(1)
	}
}

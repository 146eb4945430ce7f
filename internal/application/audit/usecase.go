// Package audit orquesta el pipeline ETL de auditoría de inventario fantasma:
// extracción de ambas tablas, agregación, auditoría y carga en los sinks.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainaudit "github.com/jhoicas/ghost-audit/internal/domain/audit"
	"github.com/jhoicas/ghost-audit/pkg/fsutil"
	"github.com/jhoicas/ghost-audit/pkg/logger"
)

// RunAuditUseCase ejecuta una corrida completa. No guarda estado entre invocaciones.
type RunAuditUseCase struct {
	inventory InventorySource
	sales     SalesSource
	sinks     []ReportSink
	log       *logger.Logger
	now       func() time.Time
}

// NewRunAuditUseCase construye el caso de uso. sinks se invocan en orden tras un cálculo exitoso.
func NewRunAuditUseCase(
	inventory InventorySource,
	sales SalesSource,
	log *logger.Logger,
	sinks ...ReportSink,
) *RunAuditUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RunAuditUseCase{
		inventory: inventory,
		sales:     sales,
		sinks:     sinks,
		log:       log,
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *RunAuditUseCase) WithClock(now func() time.Time) *RunAuditUseCase {
	uc.now = now
	return uc
}

// Execute corre el pipeline y escribe el resultado en todos los sinks.
// Todo o nada: si una tabla no se puede leer, o algún sink falla al renderizar
// o al preparar su archivo, no se escribe ninguna salida.
func (uc *RunAuditUseCase) Execute(ctx context.Context) (*Run, error) {
	run, err := uc.Preview(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.writeSinks(ctx, run); err != nil {
		uc.log.Error().Err(err).Str("run_id", run.ID.String()).Msg("escritura de reporte")
		return nil, fmt.Errorf("audit: escribir reporte: %w", err)
	}

	uc.log.Info().
		Str("run_id", run.ID.String()).
		Int("checked", run.Result.Summary.TotalChecked).
		Int("ghosts", run.Result.Summary.GhostsDetected).
		Int("products_sold", run.ProductsSold).
		Str("ghost_rate_pct", run.Result.Summary.GhostRatePct.StringFixed(2)).
		Dur("elapsed", run.FinishedAt.Sub(run.StartedAt)).
		Msg("auditoría completada")
	return run, nil
}

// writeSinks renderiza cada sink a memoria y lo deja en un temporal junto a su destino;
// solo cuando todos están listos se renombran sobre los archivos finales.
func (uc *RunAuditUseCase) writeSinks(ctx context.Context, run *Run) error {
	staged := make([]*fsutil.StagedFile, 0, len(uc.sinks))
	discard := func() {
		for _, f := range staged {
			f.Discard()
		}
	}

	for _, sink := range uc.sinks {
		data, err := sink.Render(ctx, run)
		if err != nil {
			discard()
			return fmt.Errorf("generar %s: %w", sink.Extension(), err)
		}
		f, err := fsutil.Stage(sink.Path(), data, 0o644)
		if err != nil {
			discard()
			return err
		}
		staged = append(staged, f)
	}

	for _, f := range staged {
		if err := f.Commit(); err != nil {
			discard()
			return err
		}
	}
	return nil
}

// Preview calcula la corrida sin tocar los sinks.
func (uc *RunAuditUseCase) Preview(ctx context.Context) (*Run, error) {
	run := &Run{ID: uuid.New(), StartedAt: uc.now()}
	log := uc.log.With().Str("run_id", run.ID.String()).Logger()

	// 1. Extracción
	inventory, err := uc.inventory.ReadInventory(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lectura de inventario")
		return nil, fmt.Errorf("audit: leer inventario: %w", err)
	}
	sales, err := uc.sales.ReadSales(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lectura de ventas")
		return nil, fmt.Errorf("audit: leer ventas: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debug().Int("inventory_rows", len(inventory)).Int("sales_rows", len(sales)).Msg("tablas cargadas")

	// 2. Transformación: agregación y luego auditoría (relleno con 0 antes de clasificar)
	sold := domainaudit.AggregateSales(sales)
	run.Result = domainaudit.Audit(inventory, sold)

	run.InventoryRows = len(inventory)
	run.SalesRows = len(sales)
	run.ProductsSold = len(sold)
	run.FinishedAt = uc.now()
	return run, nil
}

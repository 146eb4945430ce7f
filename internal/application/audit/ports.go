package audit

import (
	"context"

	"github.com/jhoicas/ghost-audit/internal/domain/entity"
)

// InventorySource entrega la tabla de inventario completa en memoria.
type InventorySource interface {
	ReadInventory(ctx context.Context) ([]entity.InventoryRecord, error)
}

// SalesSource entrega la tabla de transacciones de venta completa en memoria.
type SalesSource interface {
	ReadSales(ctx context.Context) ([]entity.SalesTransaction, error)
}

// ReportSink renderizador con archivo de destino (CSV, XLSX, PDF...).
// El caso de uso renderiza todos los sinks antes de escribir cualquiera.
type ReportSink interface {
	ReportRenderer
	Path() string
}

// ReportRenderer serializa una corrida a bytes para descargas.
type ReportRenderer interface {
	Render(ctx context.Context, run *Run) ([]byte, error)
	ContentType() string
	Extension() string
}

package audit

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ghost-audit/internal/domain/entity"
)

// GhostStockThreshold stock mínimo (exclusivo) para considerar un producto fantasma.
const GhostStockThreshold = 5

var hundred = decimal.NewFromInt(100)

// Summary conteos de la corrida.
type Summary struct {
	TotalChecked   int
	GhostsDetected int
	GhostRatePct   decimal.Decimal // GhostsDetected / TotalChecked * 100, 2 decimales
}

// Result salida completa del auditor.
type Result struct {
	Records []entity.AuditedRecord // tabla unida, mismo orden que el inventario
	Report  []entity.AuditedRecord // solo los marcados, mismo orden relativo
	Summary Summary
}

// IsGhost regla de auditoría: stock > 5 y cero ventas confirmadas.
func IsGhost(stockOnHand, sold int64) bool {
	return stockOnHand > GhostStockThreshold && sold == 0
}

// Classify devuelve el estado de auditoría para un stock y una cantidad vendida efectiva.
func Classify(stockOnHand, sold int64) entity.AuditStatus {
	if IsGhost(stockOnHand, sold) {
		return entity.AuditStatusFlaggedGhost
	}
	return entity.AuditStatusOK
}

// Audit une el inventario con las ventas agregadas (left join sobre inventario),
// rellena con 0 los productos sin ventas y clasifica cada registro.
// Ventas de productos que no están en el inventario se ignoran.
func Audit(inventory []entity.InventoryRecord, sold AggregatedSales) Result {
	records := make([]entity.AuditedRecord, 0, len(inventory))
	report := make([]entity.AuditedRecord, 0)

	for _, inv := range inventory {
		qty := sold.Sold(inv.ProductID)
		rec := entity.AuditedRecord{
			InventoryRecord: inv,
			QuantitySold:    qty,
			AuditStatus:     Classify(inv.StockOnHand, qty),
		}
		records = append(records, rec)
		if rec.AuditStatus.IsFlagged() {
			report = append(report, rec)
		}
	}

	return Result{
		Records: records,
		Report:  report,
		Summary: summarize(len(records), len(report)),
	}
}

func summarize(total, ghosts int) Summary {
	s := Summary{TotalChecked: total, GhostsDetected: ghosts, GhostRatePct: decimal.Zero}
	if total > 0 {
		s.GhostRatePct = decimal.NewFromInt(int64(ghosts)).
			Div(decimal.NewFromInt(int64(total))).
			Mul(hundred).
			Round(2)
	}
	return s
}

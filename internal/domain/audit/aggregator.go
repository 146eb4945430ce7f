// Package audit contiene la lógica pura de la auditoría de inventario fantasma:
// agregación de ventas por producto y clasificación de cada registro.
package audit

import "github.com/jhoicas/ghost-audit/internal/domain/entity"

// AggregatedSales total vendido por ProductID.
// Un producto sin transacciones no aparece (ausencia, no cero).
type AggregatedSales map[int64]int64

// AggregateSales suma QuantitySold por producto. Las cantidades se suman tal cual,
// sin validar negativos ni desbordes.
func AggregateSales(txs []entity.SalesTransaction) AggregatedSales {
	totals := make(AggregatedSales, len(txs))
	for _, tx := range txs {
		totals[tx.ProductID] += tx.QuantitySold
	}
	return totals
}

// Sold devuelve la cantidad vendida efectiva: 0 si el producto no tiene ventas.
func (a AggregatedSales) Sold(productID int64) int64 {
	return a[productID]
}

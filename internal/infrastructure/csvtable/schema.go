// Package csvtable lee y escribe las tablas planas del pipeline de auditoría:
// inventario, transacciones de venta y reporte de auditoría.
package csvtable

// Nombres de tabla usados en los errores.
const (
	TableInventory = "inventory"
	TableSales     = "sales"
)

// Columnas de las tablas de entrada y salida.
const (
	ColProductID    = "Product_ID"
	ColProductName  = "Product_Name"
	ColStockOnHand  = "Stock_On_Hand"
	ColStoreID      = "Store_ID"
	ColQuantitySold = "Quantity_Sold"
	ColDate         = "Date"
	ColAuditStatus  = "Audit_Status"
)

// DateLayout formato ISO de la columna Date.
const DateLayout = "2006-01-02"

var (
	inventoryColumns = []string{ColProductID, ColProductName, ColStockOnHand, ColStoreID}
	salesColumns     = []string{ColProductID, ColQuantitySold, ColDate}
	reportColumns    = []string{ColProductID, ColProductName, ColStockOnHand, ColStoreID, ColQuantitySold, ColAuditStatus}
)

// ReportColumns encabezado del reporte de auditoría, compartido con los demás exportadores.
func ReportColumns() []string {
	return append([]string(nil), reportColumns...)
}

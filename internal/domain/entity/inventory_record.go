package entity

// InventoryRecord representa el stock registrado de un producto en una tienda.
// Lo produce el sistema de inventario aguas arriba; el auditor solo lo lee.
type InventoryRecord struct {
	ProductID   int64
	ProductName string
	StockOnHand int64
	StoreID     string
}

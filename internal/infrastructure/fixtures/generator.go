// Package fixtures genera las tablas sintéticas de inventario y ventas usadas en demos y pruebas manuales.
package fixtures

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jhoicas/ghost-audit/internal/domain/entity"
	"github.com/jhoicas/ghost-audit/internal/infrastructure/csvtable"
	"github.com/jhoicas/ghost-audit/pkg/fsutil"
)

// Inventory cinco productos de la tienda S001; 104 y 105 no tienen ventas.
func Inventory() []entity.InventoryRecord {
	return []entity.InventoryRecord{
		{ProductID: 101, ProductName: "Wireless Mouse", StockOnHand: 45, StoreID: "S001"},
		{ProductID: 102, ProductName: "Gaming Keyboard", StockOnHand: 12, StoreID: "S001"},
		{ProductID: 103, ProductName: "USB-C Cable", StockOnHand: 0, StoreID: "S001"},
		{ProductID: 104, ProductName: "Monitor Stand", StockOnHand: 25, StoreID: "S001"},
		{ProductID: 105, ProductName: "Webcam", StockOnHand: 18, StoreID: "S001"},
	}
}

// Sales seis ventas fechadas hoy, ayer, ... hasta hace 5 días.
// La fecha solo etiqueta las filas; no interviene en la auditoría.
func Sales(now time.Time) []entity.SalesTransaction {
	ids := []int64{101, 101, 102, 103, 101, 102}
	qty := []int64{2, 1, 1, 5, 2, 1}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]entity.SalesTransaction, len(ids))
	for i := range ids {
		out[i] = entity.SalesTransaction{
			ProductID:    ids[i],
			QuantitySold: qty[i],
			Date:         day.AddDate(0, 0, -i),
		}
	}
	return out
}

// Generator escribe las tablas de fixtures en disco.
type Generator struct {
	inventoryPath string
	salesPath     string
	now           func() time.Time
}

// NewGenerator construye el generador con el reloj real.
func NewGenerator(inventoryPath, salesPath string) *Generator {
	return &Generator{inventoryPath: inventoryPath, salesPath: salesPath, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate escribe inventario y ventas.
func (g *Generator) Generate() error {
	var inv bytes.Buffer
	if err := csvtable.EncodeInventory(&inv, Inventory()); err != nil {
		return fmt.Errorf("fixtures: inventario: %w", err)
	}
	var sales bytes.Buffer
	if err := csvtable.EncodeSales(&sales, Sales(g.now())); err != nil {
		return fmt.Errorf("fixtures: ventas: %w", err)
	}

	if err := fsutil.WriteFileAtomic(g.inventoryPath, inv.Bytes(), 0o644); err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(g.salesPath, sales.Bytes(), 0o644)
}

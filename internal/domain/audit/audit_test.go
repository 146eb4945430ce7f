package audit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ghost-audit/internal/domain/audit"
	"github.com/jhoicas/ghost-audit/internal/domain/entity"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func inv(id int64, name string, stock int64) entity.InventoryRecord {
	return entity.InventoryRecord{ProductID: id, ProductName: name, StockOnHand: stock, StoreID: "S001"}
}

func sale(id, qty int64) entity.SalesTransaction {
	return entity.SalesTransaction{ProductID: id, QuantitySold: qty, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
}

// inventario y ventas de la corrida de demostración
func demoInventory() []entity.InventoryRecord {
	return []entity.InventoryRecord{
		inv(101, "Wireless Mouse", 45),
		inv(102, "Gaming Keyboard", 12),
		inv(103, "USB-C Cable", 0),
		inv(104, "Monitor Stand", 25),
		inv(105, "Webcam", 18),
	}
}

func demoSales() []entity.SalesTransaction {
	return []entity.SalesTransaction{
		sale(101, 2), sale(101, 1), sale(102, 1), sale(103, 5), sale(101, 2), sale(102, 1),
	}
}

func byID(records []entity.AuditedRecord, id int64) entity.AuditedRecord {
	for _, r := range records {
		if r.ProductID == id {
			return r
		}
	}
	return entity.AuditedRecord{}
}

// ── Aggregator ────────────────────────────────────────────────────────────────

func TestAggregateSales_SumaPorProducto(t *testing.T) {
	got := audit.AggregateSales(demoSales())

	assert.Equal(t, audit.AggregatedSales{101: 5, 102: 2, 103: 5}, got)
}

func TestAggregateSales_VacioDevuelveMapaVacio(t *testing.T) {
	got := audit.AggregateSales(nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAggregateSales_ProductoSinVentasAusente(t *testing.T) {
	got := audit.AggregateSales(demoSales())

	_, ok := got[104]
	assert.False(t, ok, "un producto sin transacciones no debe aparecer con valor 0")
	assert.Equal(t, int64(0), got.Sold(104))
}

// El total no depende del orden ni de cómo se parta el multiconjunto de transacciones.
func TestAggregateSales_IndependienteDelOrden(t *testing.T) {
	txs := demoSales()
	want := audit.AggregateSales(txs)

	reversed := make([]entity.SalesTransaction, len(txs))
	for i, tx := range txs {
		reversed[len(txs)-1-i] = tx
	}
	assert.Equal(t, want, audit.AggregateSales(reversed))

	for split := 0; split <= len(txs); split++ {
		left := audit.AggregateSales(txs[:split])
		right := audit.AggregateSales(txs[split:])
		merged := audit.AggregatedSales{}
		for id, q := range left {
			merged[id] += q
		}
		for id, q := range right {
			merged[id] += q
		}
		assert.Equal(t, want, merged, "split en %d", split)
	}
}

func TestAggregateSales_CantidadesSeSumanTalCual(t *testing.T) {
	got := audit.AggregateSales([]entity.SalesTransaction{sale(7, 10), sale(7, -3)})

	assert.Equal(t, int64(7), got[7])
}

// ── Regla ─────────────────────────────────────────────────────────────────────

func TestIsGhost_Umbral(t *testing.T) {
	cases := []struct {
		name  string
		stock int64
		sold  int64
		want  bool
	}{
		{"stock 5 sin ventas no se marca", 5, 0, false},
		{"stock 6 sin ventas se marca", 6, 0, true},
		{"stock alto con ventas", 45, 5, false},
		{"stock cero", 0, 0, false},
		{"stock alto con una venta", 100, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, audit.IsGhost(tc.stock, tc.sold))
		})
	}
}

func TestClassify_Estados(t *testing.T) {
	assert.Equal(t, entity.AuditStatusFlaggedGhost, audit.Classify(25, 0))
	assert.Equal(t, entity.AuditStatusOK, audit.Classify(5, 0))
}

// ── Auditor ───────────────────────────────────────────────────────────────────

func TestAudit_CorridaDemo(t *testing.T) {
	res := audit.Audit(demoInventory(), audit.AggregateSales(demoSales()))

	require.Len(t, res.Records, 5)
	require.Len(t, res.Report, 2)
	assert.Equal(t, int64(104), res.Report[0].ProductID)
	assert.Equal(t, int64(105), res.Report[1].ProductID)

	assert.Equal(t, 5, res.Summary.TotalChecked)
	assert.Equal(t, 2, res.Summary.GhostsDetected)
	assert.True(t, res.Summary.GhostRatePct.Equal(decimal.NewFromInt(40)),
		"tasa esperada 40, obtenida %s", res.Summary.GhostRatePct)
}

func TestAudit_EscenarioA_SinVentasSeMarca(t *testing.T) {
	res := audit.Audit(demoInventory(), audit.AggregateSales(demoSales()))

	r := byID(res.Records, 104)
	assert.Equal(t, "Monitor Stand", r.ProductName)
	assert.Equal(t, int64(0), r.QuantitySold)
	assert.Equal(t, entity.AuditStatusFlaggedGhost, r.AuditStatus)
	assert.Equal(t, r, byID(res.Report, 104), "debe aparecer en el reporte")
}

func TestAudit_EscenarioB_StockCeroNoSeMarca(t *testing.T) {
	res := audit.Audit(demoInventory(), audit.AggregateSales(demoSales()))

	r := byID(res.Records, 103)
	assert.Equal(t, int64(5), r.QuantitySold)
	assert.Equal(t, entity.AuditStatusOK, r.AuditStatus)
	assert.Zero(t, byID(res.Report, 103).ProductID)
}

func TestAudit_EscenarioC_ConVentasNoSeMarca(t *testing.T) {
	res := audit.Audit(demoInventory(), audit.AggregateSales(demoSales()))

	r := byID(res.Records, 101)
	assert.Equal(t, int64(45), r.StockOnHand)
	assert.Equal(t, int64(5), r.QuantitySold)
	assert.Equal(t, entity.AuditStatusOK, r.AuditStatus)
}

func TestAudit_EscenarioD_SinVentasTodoSeMarca(t *testing.T) {
	inventory := []entity.InventoryRecord{inv(1, "A", 6), inv(2, "B", 30), inv(3, "C", 99)}

	res := audit.Audit(inventory, audit.AggregateSales(nil))

	assert.Len(t, res.Report, len(inventory))
	assert.Equal(t, res.Records, res.Report)
	assert.True(t, res.Summary.GhostRatePct.Equal(decimal.NewFromInt(100)))
}

func TestAudit_CompletitudYOrden(t *testing.T) {
	inventory := []entity.InventoryRecord{inv(9, "Z", 1), inv(3, "C", 7), inv(5, "E", 8), inv(1, "A", 2)}

	res := audit.Audit(inventory, audit.AggregatedSales{5: 1})

	require.Len(t, res.Records, len(inventory), "una fila auditada por cada fila de inventario")
	for i, r := range res.Records {
		assert.Equal(t, inventory[i], r.InventoryRecord, "fila %d", i)
	}
}

func TestAudit_RellenoConCero(t *testing.T) {
	res := audit.Audit(demoInventory(), audit.AggregatedSales{101: 3})

	for _, r := range res.Records {
		if r.ProductID == 101 {
			continue
		}
		assert.Equal(t, int64(0), r.QuantitySold, "producto %d sin ventas", r.ProductID)
	}
}

func TestAudit_VentasHuerfanasSeIgnoran(t *testing.T) {
	sold := audit.AggregatedSales{999: 50}

	res := audit.Audit(demoInventory(), sold)

	assert.Len(t, res.Records, 5)
	assert.Zero(t, byID(res.Records, 999).ProductID, "ventas de productos desconocidos no se reportan")
}

func TestAudit_InventarioVacio(t *testing.T) {
	res := audit.Audit(nil, audit.AggregateSales(demoSales()))

	assert.Empty(t, res.Records)
	assert.Empty(t, res.Report)
	assert.Equal(t, 0, res.Summary.TotalChecked)
	assert.True(t, res.Summary.GhostRatePct.IsZero())
}

func TestAudit_Determinista(t *testing.T) {
	first := audit.Audit(demoInventory(), audit.AggregateSales(demoSales()))
	second := audit.Audit(demoInventory(), audit.AggregateSales(demoSales()))

	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, first.Report, second.Report)
}

package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaudit "github.com/jhoicas/ghost-audit/internal/application/audit"
	domainaudit "github.com/jhoicas/ghost-audit/internal/domain/audit"
	"github.com/jhoicas/ghost-audit/internal/domain/entity"
	"github.com/jhoicas/ghost-audit/internal/interfaces/console"
)

func TestPrintSummary_TotalesYVistaPrevia(t *testing.T) {
	inventory := []entity.InventoryRecord{
		{ProductID: 101, ProductName: "Wireless Mouse", StockOnHand: 45, StoreID: "S001"},
		{ProductID: 104, ProductName: "Monitor Stand", StockOnHand: 25, StoreID: "S001"},
	}
	run := &appaudit.Run{Result: domainaudit.Audit(inventory, domainaudit.AggregatedSales{101: 5})}

	var buf bytes.Buffer
	require.NoError(t, console.PrintSummary(&buf, run))
	out := buf.String()

	assert.Contains(t, out, "Total Products Checked: 2")
	assert.Contains(t, out, "Ghosts Detected: 1")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	last := strings.Fields(lines[len(lines)-1])
	assert.Equal(t, []string{"Monitor", "Stand", "25", "0", "FLAGGED:", "GHOST", "INVENTORY"}, last)
	mouse := strings.Fields(lines[len(lines)-2])
	assert.Equal(t, []string{"Wireless", "Mouse", "45", "5", "OK"}, mouse, "la vista previa incluye registros OK")
}

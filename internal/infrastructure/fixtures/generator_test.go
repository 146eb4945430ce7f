package fixtures_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ghost-audit/internal/infrastructure/csvtable"
	"github.com/jhoicas/ghost-audit/internal/infrastructure/fixtures"
)

func TestSales_FechasConsecutivas(t *testing.T) {
	now := time.Date(2024, 3, 2, 18, 45, 0, 0, time.UTC)

	sales := fixtures.Sales(now)

	require.Len(t, sales, 6)
	assert.Equal(t, "2024-03-02", sales[0].Date.Format(csvtable.DateLayout))
	assert.Equal(t, "2024-02-26", sales[5].Date.Format(csvtable.DateLayout), "cruza el fin de febrero bisiesto")
}

func TestGenerate_TablasLegibles(t *testing.T) {
	dir := t.TempDir()
	invPath := filepath.Join(dir, "inventory.csv")
	salesPath := filepath.Join(dir, "sales_transactions.csv")
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, fixtures.NewGenerator(invPath, salesPath).WithClock(func() time.Time { return now }).Generate())

	raw, err := os.ReadFile(invPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "Product_ID,Product_Name,Stock_On_Hand,Store_ID\n"))

	store := csvtable.NewStore(csvtable.Config{InventoryPath: invPath, SalesPath: salesPath})
	inv, err := store.ReadInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixtures.Inventory(), inv)

	sales, err := store.ReadSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixtures.Sales(now), sales)
}

package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/ghost-audit/internal/domain"
	"github.com/jhoicas/ghost-audit/internal/domain/entity"
)

// table filas crudas con el índice de cada columna por nombre de cabecera.
type table struct {
	name   string
	source string
	index  map[string]int
	rows   [][]string
}

// readTable lee la tabla completa y valida que existan las columnas requeridas.
// El orden de las columnas y las columnas extra no importan.
func readTable(r io.Reader, enc Encoding, name, source string, required []string) (*table, error) {
	cr := csv.NewReader(decode(r, enc))

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.UnreadableInputError{Path: source, Err: errors.New("tabla vacía, sin cabecera")}
	}
	if err != nil {
		return nil, &domain.UnreadableInputError{Path: source, Err: err}
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, &domain.MissingColumnError{Table: name, Column: col}
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &domain.UnreadableInputError{Path: source, Err: err}
	}
	return &table{name: name, source: source, index: index, rows: rows}, nil
}

func (t *table) cell(row []string, col string) string {
	return strings.TrimSpace(row[t.index[col]])
}

func (t *table) int64At(i int, row []string, col string) (int64, error) {
	v, err := strconv.ParseInt(t.cell(row, col), 10, 64)
	if err != nil {
		return 0, t.cellError(i, col, err)
	}
	return v, nil
}

// cellError fila numerada desde 2 (la 1 es la cabecera), como la ve quien abre el archivo.
func (t *table) cellError(i int, col string, err error) error {
	return &domain.UnreadableInputError{
		Path: t.source,
		Err:  fmt.Errorf("fila %d, columna %s: %w", i+2, col, err),
	}
}

// DecodeInventory parsea la tabla de inventario. source solo se usa en los errores.
func DecodeInventory(r io.Reader, enc Encoding, source string) ([]entity.InventoryRecord, error) {
	t, err := readTable(r, enc, TableInventory, source, inventoryColumns)
	if err != nil {
		return nil, err
	}

	out := make([]entity.InventoryRecord, 0, len(t.rows))
	for i, row := range t.rows {
		id, err := t.int64At(i, row, ColProductID)
		if err != nil {
			return nil, err
		}
		stock, err := t.int64At(i, row, ColStockOnHand)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.InventoryRecord{
			ProductID:   id,
			ProductName: t.cell(row, ColProductName),
			StockOnHand: stock,
			StoreID:     t.cell(row, ColStoreID),
		})
	}
	return out, nil
}

// DecodeSales parsea la tabla de transacciones de venta.
func DecodeSales(r io.Reader, enc Encoding, source string) ([]entity.SalesTransaction, error) {
	t, err := readTable(r, enc, TableSales, source, salesColumns)
	if err != nil {
		return nil, err
	}

	out := make([]entity.SalesTransaction, 0, len(t.rows))
	for i, row := range t.rows {
		id, err := t.int64At(i, row, ColProductID)
		if err != nil {
			return nil, err
		}
		qty, err := t.int64At(i, row, ColQuantitySold)
		if err != nil {
			return nil, err
		}
		date, err := time.Parse(DateLayout, t.cell(row, ColDate))
		if err != nil {
			return nil, t.cellError(i, ColDate, err)
		}
		out = append(out, entity.SalesTransaction{ProductID: id, QuantitySold: qty, Date: date})
	}
	return out, nil
}

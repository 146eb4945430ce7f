package csvtable

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jhoicas/ghost-audit/internal/domain/entity"
)

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func writeAll(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// EncodeReport escribe el reporte de auditoría en el orden recibido.
// Salida determinista: misma entrada, mismos bytes.
func EncodeReport(w io.Writer, records []entity.AuditedRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			itoa(r.ProductID),
			r.ProductName,
			itoa(r.StockOnHand),
			r.StoreID,
			itoa(r.QuantitySold),
			string(r.AuditStatus),
		})
	}
	return writeAll(w, reportColumns, rows)
}

// EncodeInventory escribe una tabla de inventario (fixtures).
func EncodeInventory(w io.Writer, records []entity.InventoryRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{itoa(r.ProductID), r.ProductName, itoa(r.StockOnHand), r.StoreID})
	}
	return writeAll(w, inventoryColumns, rows)
}

// EncodeSales escribe una tabla de transacciones (fixtures).
func EncodeSales(w io.Writer, txs []entity.SalesTransaction) error {
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{itoa(tx.ProductID), itoa(tx.QuantitySold), tx.Date.Format(DateLayout)})
	}
	return writeAll(w, salesColumns, rows)
}

func encodeToBytes(encode func(io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

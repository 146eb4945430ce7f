// Package xlsx exporta una corrida de auditoría a un libro Excel:
// hoja "Auditoria" con la tabla unida completa y hoja "Fantasmas" con el reporte.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appaudit "github.com/jhoicas/ghost-audit/internal/application/audit"
	"github.com/jhoicas/ghost-audit/internal/domain/entity"
	"github.com/jhoicas/ghost-audit/internal/infrastructure/csvtable"
)

const (
	SheetAudited = "Auditoria"
	SheetGhosts  = "Fantasmas"
	SheetSummary = "Resumen"
)

var (
	_ appaudit.ReportSink     = (*Exporter)(nil)
	_ appaudit.ReportRenderer = (*Exporter)(nil)
)

// Exporter genera el libro; con ruta sirve además como sink.
type Exporter struct {
	path string
}

// NewExporter construye el exportador. path puede ser vacío si solo se usa Render.
func NewExporter(path string) *Exporter { return &Exporter{path: path} }

// Render devuelve los bytes del libro.
func (e *Exporter) Render(_ context.Context, run *appaudit.Run) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// El libro nuevo trae "Sheet1"; se renombra en lugar de crear otra hoja.
	if err := f.SetSheetName("Sheet1", SheetAudited); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := writeRecords(f, SheetAudited, run.Result.Records); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetGhosts); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	if err := writeRecords(f, SheetGhosts, run.Result.Report); err != nil {
		return nil, err
	}
	if err := writeSummary(f, run); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// Path ruta de destino cuando se usa como sink.
func (e *Exporter) Path() string { return e.path }

func (e *Exporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *Exporter) Extension() string { return "xlsx" }

func writeRecords(f *excelize.File, sheet string, records []entity.AuditedRecord) error {
	columns := csvtable.ReportColumns()
	header := make([]interface{}, len(columns))
	for i, h := range columns {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: cabecera %s: %w", sheet, err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		values := []interface{}{
			r.ProductID, r.ProductName, r.StockOnHand, r.StoreID, r.QuantitySold, string(r.AuditStatus),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d de %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

func writeSummary(f *excelize.File, run *appaudit.Run) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	s := run.Result.Summary
	rows := [][]interface{}{
		{"Run_ID", run.ID.String()},
		{"Total_Products_Checked", s.TotalChecked},
		{"Ghosts_Detected", s.GhostsDetected},
		{"Products_Sold", run.ProductsSold},
		{"Ghost_Rate_Pct", s.GhostRatePct.StringFixed(2)},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(SheetSummary, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("xlsx: resumen: %w", err)
		}
	}
	return nil
}

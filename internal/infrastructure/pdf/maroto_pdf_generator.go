// Package pdf genera la versión imprimible del reporte de auditoría de inventario fantasma.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título              │  Run ID + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Revisados / Fantasmas / % Fantasmas                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | Tienda | Stock | Vendido | Estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: regla aplicada                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appaudit "github.com/jhoicas/ghost-audit/internal/application/audit"
	domainaudit "github.com/jhoicas/ghost-audit/internal/domain/audit"
	"github.com/jhoicas/ghost-audit/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 20, Blue: 20}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var (
	_ appaudit.ReportSink     = (*MarotoPDFGenerator)(nil)
	_ appaudit.ReportRenderer = (*MarotoPDFGenerator)(nil)
)

// MarotoPDFGenerator implementa el reporte de auditoría en PDF usando Maroto v2.
type MarotoPDFGenerator struct {
	path string
}

// NewMarotoPDFGenerator construye el generador. path vacío = solo Render.
func NewMarotoPDFGenerator(path string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{path: path}
}

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Render(_ context.Context, run *appaudit.Run) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Auditoría de inventario fantasma", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(run))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(run.Result.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(run.Result.Report) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin inventario fantasma detectado.", props.Text{
				Size: 9, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	for _, r := range tableDetailRows(run.Result.Report) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// Path ruta de destino cuando se usa como sink.
func (g *MarotoPDFGenerator) Path() string { return g.path }

func (g *MarotoPDFGenerator) ContentType() string { return "application/pdf" }

func (g *MarotoPDFGenerator) Extension() string { return "pdf" }

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y run id + fecha (der).
func headerRow(run *appaudit.Run) core.Row {
	fecha := run.StartedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("AUDITORÍA DE INVENTARIO FANTASMA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Productos con stock y sin ventas en el período", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Corrida: "+run.ID.String(), props.Text{
				Size: 7, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales de la corrida.
func summaryRow(s domainaudit.Summary) core.Row {
	block := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 6, Color: c}),
		)
	}
	return row.New(16).Add(
		block("Productos revisados", formatThousands(int64(s.TotalChecked)), colorPrimary),
		block("Fantasmas detectados", formatThousands(int64(s.GhostsDetected)), colorAlert),
		block("% fantasmas", s.GhostRatePct.StringFixed(2)+"%", colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de fantasmas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Tienda", 2, align.Center),
		h("Stock", 1, align.Right),
		h("Vendido", 1, align.Right),
		h("Estado", 3, align.Left),
	)
}

// tableDetailRows: una fila por producto marcado.
func tableDetailRows(records []entity.AuditedRecord) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(r.ProductID, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(nonEmpty(r.ProductName, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(r.StoreID, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(formatThousands(r.StockOnHand),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(formatThousands(r.QuantitySold),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(string(r.AuditStatus),
				props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorAlert})),
		))
	}
	return result
}

// footerRow: leyenda con la regla aplicada.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Regla: se marca como inventario fantasma todo producto con stock mayor a %d "+
				"unidades y cero ventas registradas en el período auditado.", domainaudit.GhostStockThreshold),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}

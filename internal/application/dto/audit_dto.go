package dto

import (
	"time"

	"github.com/shopspring/decimal"

	appaudit "github.com/jhoicas/ghost-audit/internal/application/audit"
	"github.com/jhoicas/ghost-audit/internal/domain/entity"
)

// AuditReportRequest query de GET /api/audit/report.
type AuditReportRequest struct {
	Format string `query:"format"` // json (default), csv, xlsx, pdf
}

// AuditedRecordDTO fila de la tabla unida.
type AuditedRecordDTO struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	StockOnHand  int64  `json:"stock_on_hand"`
	StoreID      string `json:"store_id"`
	QuantitySold int64  `json:"quantity_sold"`
	AuditStatus  string `json:"audit_status"`
}

// AuditSummaryDTO conteos de la corrida.
type AuditSummaryDTO struct {
	TotalChecked   int             `json:"total_checked"`
	GhostsDetected int             `json:"ghosts_detected"`
	GhostRatePct   decimal.Decimal `json:"ghost_rate_pct"`
}

// AuditRunDTO respuesta de POST /api/audit/runs y de GET /api/audit/report?format=json.
type AuditRunDTO struct {
	RunID         string             `json:"run_id"`
	StartedAt     time.Time          `json:"started_at"`
	FinishedAt    time.Time          `json:"finished_at"`
	InventoryRows int                `json:"inventory_rows"`
	SalesRows     int                `json:"sales_rows"`
	ProductsSold  int                `json:"products_sold"` // incluye ventas huérfanas
	Summary       AuditSummaryDTO    `json:"summary"`
	Records       []AuditedRecordDTO `json:"records,omitempty"` // solo en POST /runs
	Report        []AuditedRecordDTO `json:"report"`
}

// NewAuditRunDTO mapea una corrida; withRecords incluye la tabla unida completa.
func NewAuditRunDTO(run *appaudit.Run, withRecords bool) AuditRunDTO {
	s := run.Result.Summary
	out := AuditRunDTO{
		RunID:         run.ID.String(),
		StartedAt:     run.StartedAt,
		FinishedAt:    run.FinishedAt,
		InventoryRows: run.InventoryRows,
		SalesRows:     run.SalesRows,
		ProductsSold:  run.ProductsSold,
		Summary: AuditSummaryDTO{
			TotalChecked:   s.TotalChecked,
			GhostsDetected: s.GhostsDetected,
			GhostRatePct:   s.GhostRatePct,
		},
		Report: toRecordDTOs(run.Result.Report),
	}
	if withRecords {
		out.Records = toRecordDTOs(run.Result.Records)
	}
	return out
}

func toRecordDTOs(records []entity.AuditedRecord) []AuditedRecordDTO {
	out := make([]AuditedRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, AuditedRecordDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			StockOnHand:  r.StockOnHand,
			StoreID:      r.StoreID,
			QuantitySold: r.QuantitySold,
			AuditStatus:  string(r.AuditStatus),
		})
	}
	return out
}

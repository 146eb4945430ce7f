package audit

import (
	"time"

	"github.com/google/uuid"

	domainaudit "github.com/jhoicas/ghost-audit/internal/domain/audit"
)

// Run resultado de una invocación del pipeline. No se guarda historial entre corridas.
type Run struct {
	ID            uuid.UUID
	StartedAt     time.Time
	FinishedAt    time.Time
	InventoryRows int
	SalesRows     int
	ProductsSold  int // productos distintos con ventas agregadas
	Result        domainaudit.Result
}

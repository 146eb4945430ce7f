package entity

// AuditStatus resultado de la regla de auditoría para un registro.
type AuditStatus string

const (
	AuditStatusOK           AuditStatus = "OK"
	AuditStatusFlaggedGhost AuditStatus = "FLAGGED: GHOST INVENTORY"
)

// IsFlagged indica si el estado corresponde a inventario fantasma.
func (s AuditStatus) IsFlagged() bool { return s == AuditStatusFlaggedGhost }

// AuditedRecord es el InventoryRecord unido con sus ventas agregadas.
// QuantitySold ya viene rellenado con 0 cuando no hubo ventas.
type AuditedRecord struct {
	InventoryRecord
	QuantitySold int64
	AuditStatus  AuditStatus
}

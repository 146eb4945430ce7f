package entity

import "time"

// SalesTransaction es un evento de venta individual.
type SalesTransaction struct {
	ProductID    int64
	QuantitySold int64
	Date         time.Time // solo fecha (YYYY-MM-DD), hora en cero UTC
}

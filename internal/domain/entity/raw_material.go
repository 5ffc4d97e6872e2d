package entity

import "time"

// RawMaterial representa una materia prima con su stock actual.
// Invariante: StockQuantity >= 0. El único camino que descuenta stock con
// verificación de suficiencia es la creación de producto con recetas; las
// ediciones directas de stock son actualizaciones confiadas.
type RawMaterial struct {
	ID            string
	Code          string // código único
	Name          string
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

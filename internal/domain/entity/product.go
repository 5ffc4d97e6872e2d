package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado fabricable a partir de materias primas.
// No guarda stock propio: la capacidad de producción se deriva de las recetas
// y del stock de materias primas.
type Product struct {
	ID        string
	Code      string // código único
	Name      string
	Price     decimal.Decimal // precio de venta unitario
	CreatedAt time.Time
	UpdatedAt time.Time
}

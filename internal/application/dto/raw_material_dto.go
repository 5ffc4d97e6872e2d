package dto

import "time"

// CreateRawMaterialRequest entrada para crear una materia prima.
type CreateRawMaterialRequest struct {
	Code          string `json:"code" validate:"required,min=1,max=100"`
	Name          string `json:"name" validate:"required,min=1,max=200"`
	StockQuantity int    `json:"stock_quantity" validate:"min=0"`
}

// UpdateRawMaterialRequest entrada para actualizar una materia prima.
// El stock se reemplaza tal cual (edición manual confiada, sin verificación de suficiencia).
type UpdateRawMaterialRequest struct {
	Code          string `json:"code" validate:"required"`
	Name          string `json:"name" validate:"required"`
	StockQuantity int    `json:"stock_quantity" validate:"min=0"`
}

// RawMaterialResponse salida de una materia prima.
type RawMaterialResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

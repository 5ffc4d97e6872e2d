package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeRequest entrada para crear o actualizar una receta.
type RecipeRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	RawMaterialID string `json:"raw_material_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
}

// RecipeResponse salida de una receta.
type RecipeResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	RawMaterialID    string    `json:"raw_material_id"`
	RequiredQuantity int       `json:"required_quantity"`
	CreatedAt        time.Time `json:"created_at"`
}

// RecipeDetailResponse vista aplanada de una fila de receta: exactamente una
// entrada de materia prima por fila (contrato de aplanado, no agregación).
type RecipeDetailResponse struct {
	RecipeID     string            `json:"recipe_id"`
	ProductName  string            `json:"product_name"`
	RawMaterials []RawMaterialInfo `json:"raw_materials"`
}

// RawMaterialInfo materia prima requerida dentro de un detalle de receta.
type RawMaterialInfo struct {
	RawMaterialName  string `json:"raw_material_name"`
	RequiredQuantity int    `json:"required_quantity"`
}

// SuggestionResponse sugerencia de producción derivada del stock actual.
type SuggestionResponse struct {
	ProductName  string          `json:"product_name"`
	MaxQuantity  int             `json:"max_quantity"`
	ProductValue decimal.Decimal `json:"product_value"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code  string          `json:"code" validate:"required,min=1,max=100"`
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo completo, como la referencia).
type UpdateProductRequest struct {
	Code  string          `json:"code" validate:"required"`
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateProductWithRecipesRequest entrada del alta transaccional producto+recetas.
// Cada receta descuenta su cantidad del stock de la materia prima referida.
type CreateProductWithRecipesRequest struct {
	Product CreateProductRequest `json:"product" validate:"required"`
	Recipes []RecipeSpec         `json:"recipes"`
}

// RecipeSpec una fila de receta dentro del alta de producto. ProductID vacío
// significa "el producto recién creado".
type RecipeSpec struct {
	ProductID     string `json:"product_id"`
	RawMaterialID string `json:"raw_material_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
}

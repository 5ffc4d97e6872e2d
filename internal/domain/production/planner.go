package production

import (
	"math"
	"sort"

	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Suggestion es una estimación calculada (no persistida) de cuántas unidades
// de un producto podrían fabricarse con el stock actual.
type Suggestion struct {
	ProductName  string
	MaxQuantity  int
	ProductValue decimal.Decimal // precio unitario del producto
	TotalValue   decimal.Decimal // MaxQuantity * ProductValue
}

// Suggestions calcula las sugerencias de producción para el estado actual
// (servicio de dominio puro, sin efectos).
//
// Por cada producto: se toman sus filas de receta; sin filas queda excluido.
// Por cada fila, available = stock / requiredQuantity (división entera) y el
// máximo fabricable es el mínimo de los available. El acumulador arranca en
// math.MaxInt32 ("sin restricción todavía") y solo se emite si alguna fila lo
// acotó a un valor > 0.
//
// El mínimo se evalúa fila por fila: si un producto tiene dos filas sobre la
// misma materia prima, cada una cuenta por separado (no se suman cantidades
// por materia prima). Comportamiento de referencia, no corregirlo aquí.
//
// Orden: ProductValue descendente, orden estable; los empates conservan el
// orden de iteración del almacén y los llamadores no deben depender de él.
func Suggestions(products []*entity.Product, recipes []*entity.Recipe, materials []*entity.RawMaterial) []Suggestion {
	stockByID := make(map[string]int, len(materials))
	for _, m := range materials {
		stockByID[m.ID] = m.StockQuantity
	}
	recipesByProduct := make(map[string][]*entity.Recipe, len(products))
	for _, r := range recipes {
		recipesByProduct[r.ProductID] = append(recipesByProduct[r.ProductID], r)
	}

	suggestions := make([]Suggestion, 0, len(products))
	for _, p := range products {
		rows := recipesByProduct[p.ID]
		if len(rows) == 0 {
			continue
		}
		maxQuantity := math.MaxInt32
		for _, row := range rows {
			available := stockByID[row.RawMaterialID] / row.RequiredQuantity
			if available < maxQuantity {
				maxQuantity = available
			}
		}
		if maxQuantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(maxQuantity))
		suggestions = append(suggestions, Suggestion{
			ProductName:  p.Name,
			MaxQuantity:  maxQuantity,
			ProductValue: p.Price,
			TotalValue:   p.Price.Mul(qty),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].ProductValue.GreaterThan(suggestions[j].ProductValue)
	})
	return suggestions
}

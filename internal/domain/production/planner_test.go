package production_test

import (
	"testing"

	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
	"github.com/diamon/manufacturing-inventory/internal/domain/production"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func material(id string, stock int) *entity.RawMaterial {
	return &entity.RawMaterial{ID: id, Code: "RM-" + id, Name: "Material " + id, StockQuantity: stock}
}

func product(id, name, price string) *entity.Product {
	return &entity.Product{ID: id, Code: "P-" + id, Name: name, Price: decimal.RequireFromString(price)}
}

func recipe(productID, materialID string, required int) *entity.Recipe {
	return &entity.Recipe{ID: productID + "/" + materialID, ProductID: productID, RawMaterialID: materialID, RequiredQuantity: required}
}

// Escenario de referencia: stock=10, requerido=2, precio=100.00
// → maxQuantity=5, productValue=100.00, totalValue=500.00.
func TestSuggestions_EscenarioBase(t *testing.T) {
	got := production.Suggestions(
		[]*entity.Product{product("p1", "Test Product", "100.00")},
		[]*entity.Recipe{recipe("p1", "m1", 2)},
		[]*entity.RawMaterial{material("m1", 10)},
	)

	require.Len(t, got, 1)
	assert.Equal(t, "Test Product", got[0].ProductName)
	assert.Equal(t, 5, got[0].MaxQuantity)
	assert.True(t, got[0].ProductValue.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, got[0].TotalValue.Equal(decimal.RequireFromString("500.00")))
}

// Un producto sin filas de receta no puede fabricarse y queda excluido.
func TestSuggestions_ProductoSinRecetasExcluido(t *testing.T) {
	got := production.Suggestions(
		[]*entity.Product{product("p1", "Sin receta", "50")},
		nil,
		[]*entity.RawMaterial{material("m1", 100)},
	)
	assert.Empty(t, got)
}

// El máximo fabricable es el mínimo de floor(stock/requerido) entre las filas.
func TestSuggestions_MinimoEntreFilas(t *testing.T) {
	got := production.Suggestions(
		[]*entity.Product{product("p1", "Bicicleta", "300")},
		[]*entity.Recipe{
			recipe("p1", "acero", 5),    // 1000/5 = 200
			recipe("p1", "aluminio", 4), // 800/4 = 200
			recipe("p1", "caucho", 7),   // 100/7 = 14 → manda
		},
		[]*entity.RawMaterial{material("acero", 1000), material("aluminio", 800), material("caucho", 100)},
	)

	require.Len(t, got, 1)
	assert.Equal(t, 14, got[0].MaxQuantity)
}

// Si alguna fila da cero disponible, el producto queda excluido.
func TestSuggestions_FilaSinStockExcluye(t *testing.T) {
	got := production.Suggestions(
		[]*entity.Product{product("p1", "Botella", "20")},
		[]*entity.Recipe{
			recipe("p1", "plastico", 1), // 500 disponibles
			recipe("p1", "vidrio", 3),   // 2/3 = 0 → excluido
		},
		[]*entity.RawMaterial{material("plastico", 500), material("vidrio", 2)},
	)
	assert.Empty(t, got)
}

// Dos filas sobre la misma materia prima se evalúan por separado (no se suman
// cantidades por materia prima): 10/3=3 y 10/4=2 → 2, no 10/7=1.
// Comportamiento de referencia; este test evita que alguien lo "corrija".
func TestSuggestions_FilasDuplicadasMismaMateria(t *testing.T) {
	got := production.Suggestions(
		[]*entity.Product{product("p1", "Duplicado", "10")},
		[]*entity.Recipe{
			recipe("p1", "m1", 3),
			{ID: "r2", ProductID: "p1", RawMaterialID: "m1", RequiredQuantity: 4},
		},
		[]*entity.RawMaterial{material("m1", 10)},
	)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].MaxQuantity)
}

// Las sugerencias salen ordenadas por valor del producto descendente.
func TestSuggestions_OrdenPorValorDescendente(t *testing.T) {
	got := production.Suggestions(
		[]*entity.Product{
			product("p1", "Barato", "10"),
			product("p2", "Caro", "900"),
			product("p3", "Medio", "450"),
		},
		[]*entity.Recipe{
			recipe("p1", "m1", 1),
			recipe("p2", "m1", 1),
			recipe("p3", "m1", 1),
		},
		[]*entity.RawMaterial{material("m1", 50)},
	)

	require.Len(t, got, 3)
	assert.Equal(t, "Caro", got[0].ProductName)
	assert.Equal(t, "Medio", got[1].ProductName)
	assert.Equal(t, "Barato", got[2].ProductName)
	for i := range got {
		assert.Equal(t, 50, got[i].MaxQuantity)
	}
}

// Sin recetas en el sistema la lista es vacía, no nil-pánico.
func TestSuggestions_SinRecetasListaVacia(t *testing.T) {
	got := production.Suggestions(
		[]*entity.Product{product("p1", "A", "1"), product("p2", "B", "2")},
		[]*entity.Recipe{},
		nil,
	)
	assert.Empty(t, got)
}

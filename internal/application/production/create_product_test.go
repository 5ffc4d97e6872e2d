package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamon/manufacturing-inventory/internal/application/dto"
	"github.com/diamon/manufacturing-inventory/internal/application/production"
	"github.com/diamon/manufacturing-inventory/internal/apptest"
	"github.com/diamon/manufacturing-inventory/internal/domain"
	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
)

func seedMaterial(s *apptest.MemStore, stock int) string {
	id := uuid.New().String()
	now := time.Now()
	_ = apptest.MaterialRepo{S: s}.Create(&entity.RawMaterial{
		ID: id, Code: "RM-" + id[:8], Name: "Material", StockQuantity: stock,
		CreatedAt: now, UpdatedAt: now,
	})
	return id
}

func seedProduct(s *apptest.MemStore, name string) string {
	id := uuid.New().String()
	now := time.Now()
	_ = apptest.ProductRepo{S: s}.Create(&entity.Product{
		ID: id, Code: "P-" + id[:8], Name: name, Price: decimal.NewFromInt(10),
		CreatedAt: now, UpdatedAt: now,
	})
	return id
}

func productRequest(code string) dto.CreateProductRequest {
	return dto.CreateProductRequest{Code: code, Name: "Producto " + code, Price: decimal.RequireFromString("99.90")}
}

// El alta descuenta exactamente la cantidad pedida de cada materia prima,
// una vez por fila de receta, y persiste las recetas apuntando al nuevo producto.
func TestCreateProductWithRecipes_DescuentaStock(t *testing.T) {
	store := apptest.NewMemStore()
	m1 := seedMaterial(store, 100)
	m2 := seedMaterial(store, 40)
	uc := production.NewCreateProductUseCase(apptest.TxRunner{S: store})

	out, err := uc.CreateProductWithRecipes(context.Background(), dto.CreateProductWithRecipesRequest{
		Product: productRequest("P100"),
		Recipes: []dto.RecipeSpec{
			{RawMaterialID: m1, Quantity: 30},
			{RawMaterialID: m2, Quantity: 40},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "P100", out.Code)

	got1, _ := apptest.MaterialRepo{S: store}.GetByID(m1)
	got2, _ := apptest.MaterialRepo{S: store}.GetByID(m2)
	assert.Equal(t, 70, got1.StockQuantity)
	assert.Equal(t, 0, got2.StockQuantity)

	recipes, _ := apptest.RecipeRepo{S: store}.ListByProduct(out.ID)
	require.Len(t, recipes, 2)
	assert.Equal(t, 30, recipes[0].RequiredQuantity)
	assert.Equal(t, 40, recipes[1].RequiredQuantity)
}

// Stock=10 y pedido=15: falla con stock insuficiente y el Rollback deja el
// stock en 10, sin descuento parcial visible.
func TestCreateProductWithRecipes_StockInsuficienteSinDescuento(t *testing.T) {
	store := apptest.NewMemStore()
	m1 := seedMaterial(store, 10)
	uc := production.NewCreateProductUseCase(apptest.TxRunner{S: store})

	_, err := uc.CreateProductWithRecipes(context.Background(), dto.CreateProductWithRecipesRequest{
		Product: productRequest("P200"),
		Recipes: []dto.RecipeSpec{{RawMaterialID: m1, Quantity: 15}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, _ := apptest.MaterialRepo{S: store}.GetByID(m1)
	assert.Equal(t, 10, got.StockQuantity)
	products, _ := apptest.ProductRepo{S: store}.List()
	assert.Empty(t, products, "el producto tampoco debe quedar persistido")
}

// Fallo a mitad del lote: la primera fila alcanzaba, la segunda no; el
// descuento de la primera también se revierte (todo-o-nada).
func TestCreateProductWithRecipes_FalloParcialRevierteTodo(t *testing.T) {
	store := apptest.NewMemStore()
	m1 := seedMaterial(store, 100)
	m2 := seedMaterial(store, 5)
	uc := production.NewCreateProductUseCase(apptest.TxRunner{S: store})

	_, err := uc.CreateProductWithRecipes(context.Background(), dto.CreateProductWithRecipesRequest{
		Product: productRequest("P300"),
		Recipes: []dto.RecipeSpec{
			{RawMaterialID: m1, Quantity: 60},
			{RawMaterialID: m2, Quantity: 6},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	got1, _ := apptest.MaterialRepo{S: store}.GetByID(m1)
	assert.Equal(t, 100, got1.StockQuantity)
	recipes, _ := apptest.RecipeRepo{S: store}.List()
	assert.Empty(t, recipes)
}

// Materia prima inexistente: ErrNotFound y nada persistido.
func TestCreateProductWithRecipes_MateriaInexistente(t *testing.T) {
	store := apptest.NewMemStore()
	uc := production.NewCreateProductUseCase(apptest.TxRunner{S: store})

	_, err := uc.CreateProductWithRecipes(context.Background(), dto.CreateProductWithRecipesRequest{
		Product: productRequest("P400"),
		Recipes: []dto.RecipeSpec{{RawMaterialID: uuid.New().String(), Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	products, _ := apptest.ProductRepo{S: store}.List()
	assert.Empty(t, products)
}

// ProductID vacío en la fila apunta al producto recién creado; uno explícito
// y existente apunta a ese otro producto.
func TestCreateProductWithRecipes_ResolucionProductoDestino(t *testing.T) {
	store := apptest.NewMemStore()
	m1 := seedMaterial(store, 50)
	other := seedProduct(store, "Existente")
	uc := production.NewCreateProductUseCase(apptest.TxRunner{S: store})

	out, err := uc.CreateProductWithRecipes(context.Background(), dto.CreateProductWithRecipesRequest{
		Product: productRequest("P500"),
		Recipes: []dto.RecipeSpec{
			{RawMaterialID: m1, Quantity: 2},
			{RawMaterialID: m1, Quantity: 3, ProductID: other},
		},
	})
	require.NoError(t, err)

	own, _ := apptest.RecipeRepo{S: store}.ListByProduct(out.ID)
	foreign, _ := apptest.RecipeRepo{S: store}.ListByProduct(other)
	require.Len(t, own, 1)
	require.Len(t, foreign, 1)
	assert.Equal(t, 2, own[0].RequiredQuantity)
	assert.Equal(t, 3, foreign[0].RequiredQuantity)

	// Ambas filas descontaron de la misma materia prima.
	got, _ := apptest.MaterialRepo{S: store}.GetByID(m1)
	assert.Equal(t, 45, got.StockQuantity)
}

// ProductID mal formado se trata como referencia inválida (clase not-found) y revierte.
func TestCreateProductWithRecipes_ProductoDestinoMalFormado(t *testing.T) {
	store := apptest.NewMemStore()
	m1 := seedMaterial(store, 50)
	uc := production.NewCreateProductUseCase(apptest.TxRunner{S: store})

	_, err := uc.CreateProductWithRecipes(context.Background(), dto.CreateProductWithRecipesRequest{
		Product: productRequest("P600"),
		Recipes: []dto.RecipeSpec{{RawMaterialID: m1, Quantity: 2, ProductID: "no-es-uuid"}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidID)

	got, _ := apptest.MaterialRepo{S: store}.GetByID(m1)
	assert.Equal(t, 50, got.StockQuantity)
}

// Cantidad no positiva se rechaza en la frontera, antes de tocar el almacén.
func TestCreateProductWithRecipes_CantidadInvalida(t *testing.T) {
	store := apptest.NewMemStore()
	m1 := seedMaterial(store, 50)
	uc := production.NewCreateProductUseCase(apptest.TxRunner{S: store})

	_, err := uc.CreateProductWithRecipes(context.Background(), dto.CreateProductWithRecipesRequest{
		Product: productRequest("P700"),
		Recipes: []dto.RecipeSpec{{RawMaterialID: m1, Quantity: 0}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin recetas: crea solo el producto, sin tocar stock.
func TestCreateProductWithRecipes_SinRecetas(t *testing.T) {
	store := apptest.NewMemStore()
	uc := production.NewCreateProductUseCase(apptest.TxRunner{S: store})

	out, err := uc.CreateProductWithRecipes(context.Background(), dto.CreateProductWithRecipesRequest{
		Product: productRequest("P800"),
	})
	require.NoError(t, err)
	got, _ := apptest.ProductRepo{S: store}.GetByID(out.ID)
	require.NotNil(t, got)
	assert.Equal(t, "P800", got.Code)
}

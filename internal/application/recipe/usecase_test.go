package recipe_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamon/manufacturing-inventory/internal/application/dto"
	"github.com/diamon/manufacturing-inventory/internal/application/recipe"
	"github.com/diamon/manufacturing-inventory/internal/apptest"
	"github.com/diamon/manufacturing-inventory/internal/domain"
	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
)

type fixture struct {
	store      *apptest.MemStore
	uc         *recipe.UseCase
	productID  string
	materialID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := apptest.NewMemStore()
	now := time.Now()
	productID := uuid.New().String()
	materialID := uuid.New().String()
	require.NoError(t, apptest.ProductRepo{S: store}.Create(&entity.Product{
		ID: productID, Code: "P001", Name: "Bike", Price: decimal.RequireFromString("300.00"),
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, apptest.MaterialRepo{S: store}.Create(&entity.RawMaterial{
		ID: materialID, Code: "RM001", Name: "Steel", StockQuantity: 10,
		CreatedAt: now, UpdatedAt: now,
	}))
	return &fixture{
		store:      store,
		uc:         recipe.NewUseCase(apptest.RecipeRepo{S: store}, apptest.ProductRepo{S: store}, apptest.MaterialRepo{S: store}),
		productID:  productID,
		materialID: materialID,
	}
}

// Crear y luego leer por ID devuelve la misma terna producto/materia/cantidad.
func TestRecipe_CrearYLeerIdaYVuelta(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.Create(dto.RecipeRequest{
		ProductID: f.productID, RawMaterialID: f.materialID, Quantity: 4,
	})
	require.NoError(t, err)

	got, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, f.productID, got.ProductID)
	assert.Equal(t, f.materialID, got.RawMaterialID)
	assert.Equal(t, 4, got.RequiredQuantity)
}

// Crear una receta NO verifica suficiencia de stock: una cantidad requerida
// mayor al stock actual es válida aquí (asimetría intencional; la verificación
// vive solo en el alta producto+recetas).
func TestRecipe_CrearSinVerificarStock(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.Create(dto.RecipeRequest{
		ProductID: f.productID, RawMaterialID: f.materialID, Quantity: 9999,
	})
	require.NoError(t, err)
	assert.Equal(t, 9999, created.RequiredQuantity)

	// El stock quedó intacto: el CRUD de recetas nunca descuenta.
	m, _ := apptest.MaterialRepo{S: f.store}.GetByID(f.materialID)
	assert.Equal(t, 10, m.StockQuantity)
}

func TestRecipe_CrearConProductoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.RecipeRequest{
		ProductID: uuid.New().String(), RawMaterialID: f.materialID, Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipe_CrearConMateriaInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.RecipeRequest{
		ProductID: f.productID, RawMaterialID: uuid.New().String(), Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipe_IDMalFormado(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.GetByID("no-es-uuid")
	require.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = f.uc.Create(dto.RecipeRequest{ProductID: "tampoco", RawMaterialID: f.materialID, Quantity: 1})
	require.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestRecipe_CantidadNoPositivaRechazada(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.RecipeRequest{ProductID: f.productID, RawMaterialID: f.materialID, Quantity: 0})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update reapunta la receta a otra materia prima y cambia la cantidad.
func TestRecipe_Actualizar(t *testing.T) {
	f := newFixture(t)
	now := time.Now()
	otherMaterial := uuid.New().String()
	require.NoError(t, apptest.MaterialRepo{S: f.store}.Create(&entity.RawMaterial{
		ID: otherMaterial, Code: "RM002", Name: "Plastic", StockQuantity: 500,
		CreatedAt: now, UpdatedAt: now,
	}))

	created, err := f.uc.Create(dto.RecipeRequest{ProductID: f.productID, RawMaterialID: f.materialID, Quantity: 2})
	require.NoError(t, err)

	updated, err := f.uc.Update(created.ID, dto.RecipeRequest{
		ProductID: f.productID, RawMaterialID: otherMaterial, Quantity: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, otherMaterial, updated.RawMaterialID)
	assert.Equal(t, 7, updated.RequiredQuantity)

	got, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.RequiredQuantity)
}

func TestRecipe_ActualizarInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Update(uuid.New().String(), dto.RecipeRequest{
		ProductID: f.productID, RawMaterialID: f.materialID, Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipe_Listar(t *testing.T) {
	f := newFixture(t)
	for i := 1; i <= 3; i++ {
		_, err := f.uc.Create(dto.RecipeRequest{ProductID: f.productID, RawMaterialID: f.materialID, Quantity: i})
		require.NoError(t, err)
	}

	list, err := f.uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

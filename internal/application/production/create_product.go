package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/diamon/manufacturing-inventory/internal/application/dto"
	"github.com/diamon/manufacturing-inventory/internal/application/usecase"
	"github.com/diamon/manufacturing-inventory/internal/domain"
	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
	"github.com/diamon/manufacturing-inventory/internal/domain/repository"
)

// CreateProductUseCase alta transaccional de un producto con sus recetas:
// persiste el producto y, por cada fila de receta, descuenta del stock de la
// materia prima la cantidad requerida. Es el único camino que descuenta stock
// con verificación de suficiencia.
type CreateProductUseCase struct {
	txRunner TxRunner
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(txRunner TxRunner) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner}
}

// CreateProductWithRecipes ejecuta el alta dentro de una sola transacción.
//
// Pasos, en orden de entrada: persistir el producto; por cada fila, bloquear
// la materia prima (SELECT FOR UPDATE), verificar stock >= cantidad,
// descontar, resolver el producto destino (vacío = el recién creado; uuid
// mal formado o inexistente = error) y persistir la receta. El primer fallo
// aborta; el Rollback de la transacción garantiza que no queda visible ningún
// descuento parcial. El bloqueo de fila serializa consumos concurrentes sobre
// la misma materia prima: sin él, dos consumos podrían pasar la verificación
// contra stock viejo y sobregirar.
func (uc *CreateProductUseCase) CreateProductWithRecipes(ctx context.Context, in dto.CreateProductWithRecipesRequest) (*dto.ProductResponse, error) {
	if in.Product.Code == "" || in.Product.Name == "" || in.Product.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for _, spec := range in.Recipes {
		if spec.RawMaterialID == "" || spec.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if _, err := uuid.Parse(spec.RawMaterialID); err != nil {
			return nil, domain.ErrInvalidID
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Code:      in.Product.Code,
		Name:      in.Product.Name,
		Price:     in.Product.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		materialRepo repository.RawMaterialRepository,
		recipeRepo repository.RecipeRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		for _, spec := range in.Recipes {
			if err := uc.consumeAndLink(productRepo, materialRepo, recipeRepo, product, spec, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return usecase.ToProductResponse(product), nil
}

// consumeAndLink procesa una fila: bloquea y descuenta la materia prima y
// persiste la receta apuntando al producto resuelto.
func (uc *CreateProductUseCase) consumeAndLink(
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
	recipeRepo repository.RecipeRepository,
	created *entity.Product,
	spec dto.RecipeSpec,
	now time.Time,
) error {
	material, err := materialRepo.GetForUpdate(spec.RawMaterialID)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	if material.StockQuantity < spec.Quantity {
		return domain.ErrInsufficientStock
	}
	material.StockQuantity -= spec.Quantity
	material.UpdatedAt = now
	if err := materialRepo.Update(material); err != nil {
		return err
	}

	// Producto destino: vacío = el recién creado; si viene, debe ser un uuid
	// válido de un producto existente.
	target := created.ID
	if spec.ProductID != "" {
		if _, err := uuid.Parse(spec.ProductID); err != nil {
			return domain.ErrInvalidID
		}
		existing, err := productRepo.GetByID(spec.ProductID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		target = existing.ID
	}

	return recipeRepo.Create(&entity.Recipe{
		ID:               uuid.New().String(),
		ProductID:        target,
		RawMaterialID:    spec.RawMaterialID,
		RequiredQuantity: spec.Quantity,
		CreatedAt:        now,
	})
}

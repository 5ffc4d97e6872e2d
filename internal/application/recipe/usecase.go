package recipe

import (
	"time"

	"github.com/google/uuid"

	"github.com/diamon/manufacturing-inventory/internal/application/dto"
	"github.com/diamon/manufacturing-inventory/internal/domain"
	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
	"github.com/diamon/manufacturing-inventory/internal/domain/repository"
)

// UseCase CRUD de recetas. Crear o reapuntar una receta NO verifica stock:
// la verificación de suficiencia es exclusiva del alta producto+recetas
// (asimetría intencional del comportamiento de referencia).
type UseCase struct {
	recipeRepo   repository.RecipeRepository
	productRepo  repository.ProductRepository
	materialRepo repository.RawMaterialRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	recipeRepo repository.RecipeRepository,
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
) *UseCase {
	return &UseCase{
		recipeRepo:   recipeRepo,
		productRepo:  productRepo,
		materialRepo: materialRepo,
	}
}

// Create crea una receta apuntando a un producto y una materia prima existentes.
func (uc *UseCase) Create(in dto.RecipeRequest) (*dto.RecipeResponse, error) {
	productID, materialID, err := uc.resolveRefs(in)
	if err != nil {
		return nil, err
	}
	rec := &entity.Recipe{
		ID:               uuid.New().String(),
		ProductID:        productID,
		RawMaterialID:    materialID,
		RequiredQuantity: in.Quantity,
		CreatedAt:        time.Now(),
	}
	if err := uc.recipeRepo.Create(rec); err != nil {
		return nil, err
	}
	return toRecipeResponse(rec), nil
}

// GetByID obtiene una receta por ID.
func (uc *UseCase) GetByID(id string) (*dto.RecipeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	rec, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toRecipeResponse(rec), nil
}

// List lista todas las recetas.
func (uc *UseCase) List() ([]dto.RecipeResponse, error) {
	list, err := uc.recipeRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toRecipeResponse(rec))
	}
	return items, nil
}

// Update reapunta una receta existente y cambia su cantidad requerida.
func (uc *UseCase) Update(id string, in dto.RecipeRequest) (*dto.RecipeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	rec, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	productID, materialID, err := uc.resolveRefs(in)
	if err != nil {
		return nil, err
	}
	rec.ProductID = productID
	rec.RawMaterialID = materialID
	rec.RequiredQuantity = in.Quantity
	if err := uc.recipeRepo.Update(rec); err != nil {
		return nil, err
	}
	return toRecipeResponse(rec), nil
}

// resolveRefs valida la entrada y resuelve producto y materia prima referidos.
func (uc *UseCase) resolveRefs(in dto.RecipeRequest) (productID, materialID string, err error) {
	if in.Quantity <= 0 {
		return "", "", domain.ErrInvalidInput
	}
	if _, err := uuid.Parse(in.ProductID); err != nil {
		return "", "", domain.ErrInvalidID
	}
	if _, err := uuid.Parse(in.RawMaterialID); err != nil {
		return "", "", domain.ErrInvalidID
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return "", "", err
	}
	if product == nil {
		return "", "", domain.ErrNotFound
	}
	material, err := uc.materialRepo.GetByID(in.RawMaterialID)
	if err != nil {
		return "", "", err
	}
	if material == nil {
		return "", "", domain.ErrNotFound
	}
	return product.ID, material.ID, nil
}

func toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	if r == nil {
		return nil
	}
	return &dto.RecipeResponse{
		ID:               r.ID,
		ProductID:        r.ProductID,
		RawMaterialID:    r.RawMaterialID,
		RequiredQuantity: r.RequiredQuantity,
		CreatedAt:        r.CreatedAt,
	}
}

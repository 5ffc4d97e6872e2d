package production

import (
	"github.com/diamon/manufacturing-inventory/internal/application/dto"
	"github.com/diamon/manufacturing-inventory/internal/domain/production"
	"github.com/diamon/manufacturing-inventory/internal/domain/repository"
)

// SuggestionUseCase vistas de solo lectura del motor de recetas: sugerencias
// de producción y detalle aplanado de recetas. Sin estado entre llamadas; todo
// se lee del almacén en el momento de la consulta.
type SuggestionUseCase struct {
	productRepo  repository.ProductRepository
	materialRepo repository.RawMaterialRepository
	recipeRepo   repository.RecipeRepository
}

// NewSuggestionUseCase construye el caso de uso.
func NewSuggestionUseCase(
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
	recipeRepo repository.RecipeRepository,
) *SuggestionUseCase {
	return &SuggestionUseCase{
		productRepo:  productRepo,
		materialRepo: materialRepo,
		recipeRepo:   recipeRepo,
	}
}

// ProductionSuggestions lee el estado actual y delega el cálculo al servicio
// de dominio. Lista vacía (no nil) cuando ningún producto es fabricable.
func (uc *SuggestionUseCase) ProductionSuggestions() ([]dto.SuggestionResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	recipes, err := uc.recipeRepo.List()
	if err != nil {
		return nil, err
	}
	materials, err := uc.materialRepo.List()
	if err != nil {
		return nil, err
	}

	suggestions := production.Suggestions(products, recipes, materials)
	out := make([]dto.SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.SuggestionResponse{
			ProductName:  s.ProductName,
			MaxQuantity:  s.MaxQuantity,
			ProductValue: s.ProductValue,
			TotalValue:   s.TotalValue,
		})
	}
	return out, nil
}

// RecipeDetails devuelve una vista aplanada por fila de receta: cada registro
// lleva exactamente una materia prima (las recetas son producto-materia 1:1
// por fila; esto no es una vista agrupada de la lista de materiales).
func (uc *SuggestionUseCase) RecipeDetails() ([]dto.RecipeDetailResponse, error) {
	recipes, err := uc.recipeRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	materials, err := uc.materialRepo.List()
	if err != nil {
		return nil, err
	}

	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	materialNames := make(map[string]string, len(materials))
	for _, m := range materials {
		materialNames[m.ID] = m.Name
	}

	out := make([]dto.RecipeDetailResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, dto.RecipeDetailResponse{
			RecipeID:    r.ID,
			ProductName: productNames[r.ProductID],
			RawMaterials: []dto.RawMaterialInfo{{
				RawMaterialName:  materialNames[r.RawMaterialID],
				RequiredQuantity: r.RequiredQuantity,
			}},
		})
	}
	return out, nil
}

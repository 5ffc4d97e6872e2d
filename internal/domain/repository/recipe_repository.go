package repository

import "github.com/diamon/manufacturing-inventory/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para Recipe.
// GetByID devuelve (nil, nil) cuando la receta no existe.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	List() ([]*entity.Recipe, error)
	ListByProduct(productID string) ([]*entity.Recipe, error)
	Update(recipe *entity.Recipe) error
	Delete(id string) error
}

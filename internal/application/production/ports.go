package production

import (
	"context"

	"github.com/diamon/manufacturing-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta producto+recetas con
// descuento de stock sea todo-o-nada: ningún lector concurrente observa un
// lote aplicado a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		materialRepo repository.RawMaterialRepository,
		recipeRepo repository.RecipeRepository,
	) error) error
}

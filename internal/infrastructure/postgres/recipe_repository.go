package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
	"github.com/diamon/manufacturing-inventory/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste una nueva fila de receta.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	query := `
		INSERT INTO product_recipes (id, product_id, raw_material_id, required_quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.ProductID, recipe.RawMaterialID, recipe.RequiredQuantity, recipe.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// GetByID obtiene una receta por ID. Devuelve (nil, nil) si no existe.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	query := `
		SELECT id, product_id, raw_material_id, required_quantity, created_at
		FROM product_recipes WHERE id = $1`
	var rec entity.Recipe
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ProductID, &rec.RawMaterialID, &rec.RequiredQuantity, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &rec, nil
}

// List lista todas las recetas en orden de creación.
func (r *RecipeRepo) List() ([]*entity.Recipe, error) {
	return r.list(`
		SELECT id, product_id, raw_material_id, required_quantity, created_at
		FROM product_recipes ORDER BY created_at`)
}

// ListByProduct lista las filas de receta de un producto.
func (r *RecipeRepo) ListByProduct(productID string) ([]*entity.Recipe, error) {
	return r.list(`
		SELECT id, product_id, raw_material_id, required_quantity, created_at
		FROM product_recipes WHERE product_id = $1 ORDER BY created_at`, productID)
}

func (r *RecipeRepo) list(query string, args ...any) ([]*entity.Recipe, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.RawMaterialID, &rec.RequiredQuantity, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Update reapunta la receta a otro producto/materia prima y cambia la cantidad requerida.
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	query := `
		UPDATE product_recipes SET product_id = $2, raw_material_id = $3, required_quantity = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.ProductID, recipe.RawMaterialID, recipe.RequiredQuantity,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

// Delete elimina una receta por ID.
func (r *RecipeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

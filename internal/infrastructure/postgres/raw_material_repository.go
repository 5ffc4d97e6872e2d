package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/diamon/manufacturing-inventory/internal/domain"
	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
	"github.com/diamon/manufacturing-inventory/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo implementación de RawMaterialRepository sobre PostgreSQL (usable con pool o tx).
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador de materias primas. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

// Create persiste una nueva materia prima.
func (r *RawMaterialRepo) Create(material *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (id, code, name, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Code, material.Name, material.StockQuantity,
		material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// GetByID obtiene una materia prima por ID. Devuelve (nil, nil) si no existe.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la materia prima y bloquea la fila (SELECT FOR UPDATE).
// Serializa el verificar-y-descontar de consumos concurrentes sobre la misma fila.
func (r *RawMaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	return r.get(id, true)
}

func (r *RawMaterialRepo) get(id string, forUpdate bool) (*entity.RawMaterial, error) {
	query := `
		SELECT id, code, name, stock_quantity, created_at, updated_at
		FROM raw_materials WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var m entity.RawMaterial
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Code, &m.Name, &m.StockQuantity, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return &m, nil
}

// GetByCode obtiene una materia prima por su código único.
func (r *RawMaterialRepo) GetByCode(code string) (*entity.RawMaterial, error) {
	query := `
		SELECT id, code, name, stock_quantity, created_at, updated_at
		FROM raw_materials WHERE code = $1`
	var m entity.RawMaterial
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&m.ID, &m.Code, &m.Name, &m.StockQuantity, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material by code: %w", err)
	}
	return &m, nil
}

// List lista todas las materias primas en orden de creación.
func (r *RawMaterialRepo) List() ([]*entity.RawMaterial, error) {
	query := `
		SELECT id, code, name, stock_quantity, created_at, updated_at
		FROM raw_materials ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.StockQuantity, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza código, nombre y stock. La edición directa de stock es
// confiada: la verificación de suficiencia solo aplica al consumo por recetas.
func (r *RawMaterialRepo) Update(material *entity.RawMaterial) error {
	query := `
		UPDATE raw_materials SET code = $2, name = $3, stock_quantity = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Code, material.Name, material.StockQuantity, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update raw material: %w", err)
	}
	return nil
}

// Delete elimina una materia prima por ID. Las recetas dependientes caen por FK ON DELETE CASCADE.
func (r *RawMaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM raw_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete raw material: %w", err)
	}
	return nil
}

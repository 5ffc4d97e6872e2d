package repository

import "github.com/diamon/manufacturing-inventory/internal/domain/entity"

// RawMaterialRepository define el puerto de persistencia para RawMaterial.
// GetByID devuelve (nil, nil) cuando la materia prima no existe.
type RawMaterialRepository interface {
	Create(material *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	GetByCode(code string) (*entity.RawMaterial, error)
	List() ([]*entity.RawMaterial, error)
	Update(material *entity.RawMaterial) error
	Delete(id string) error
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar la
	// secuencia verificar-suficiencia-y-descontar dentro de una transacción.
	GetForUpdate(id string) (*entity.RawMaterial, error)
}

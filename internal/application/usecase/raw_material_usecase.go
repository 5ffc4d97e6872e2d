package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/diamon/manufacturing-inventory/internal/application/dto"
	"github.com/diamon/manufacturing-inventory/internal/domain"
	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
	"github.com/diamon/manufacturing-inventory/internal/domain/repository"
)

// RawMaterialUseCase casos de uso CRUD para materias primas.
// La edición de stock aquí es directa y confiada; la verificación de
// suficiencia es exclusiva del consumo por recetas (paquete production).
type RawMaterialUseCase struct {
	repo repository.RawMaterialRepository
}

// NewRawMaterialUseCase construye el caso de uso.
func NewRawMaterialUseCase(repo repository.RawMaterialRepository) *RawMaterialUseCase {
	return &RawMaterialUseCase{repo: repo}
}

// Create crea una materia prima.
func (uc *RawMaterialUseCase) Create(in dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	if in.Code == "" || in.Name == "" || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	material := &entity.RawMaterial{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		StockQuantity: in.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toRawMaterialResponse(material), nil
}

// GetByID obtiene una materia prima por ID.
func (uc *RawMaterialUseCase) GetByID(id string) (*dto.RawMaterialResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return toRawMaterialResponse(material), nil
}

// List lista todas las materias primas.
func (uc *RawMaterialUseCase) List() ([]dto.RawMaterialResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RawMaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toRawMaterialResponse(m))
	}
	return items, nil
}

// Update reemplaza código, nombre y stock de una materia prima existente.
func (uc *RawMaterialUseCase) Update(id string, in dto.UpdateRawMaterialRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	if in.StockQuantity < 0 {
		return domain.ErrInvalidInput
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	material.Code = in.Code
	material.Name = in.Name
	material.StockQuantity = in.StockQuantity
	material.UpdatedAt = time.Now()
	return uc.repo.Update(material)
}

// Delete elimina una materia prima; sus recetas caen en cascada (integridad del almacén).
func (uc *RawMaterialUseCase) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toRawMaterialResponse(m *entity.RawMaterial) *dto.RawMaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.RawMaterialResponse{
		ID:            m.ID,
		Code:          m.Code,
		Name:          m.Name,
		StockQuantity: m.StockQuantity,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

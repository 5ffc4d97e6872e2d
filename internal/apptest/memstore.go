// Package apptest provee un almacén en memoria que implementa los puertos de
// persistencia, para tests de casos de uso sin PostgreSQL. El TxRunner simula
// la transacción del almacén con snapshot/restauración (Rollback todo-o-nada).
package apptest

import (
	"context"
	"sync"

	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
	"github.com/diamon/manufacturing-inventory/internal/domain/repository"
)

// MemStore almacén en memoria para tests: mapas protegidos por RWMutex con
// orden de inserción estable. Las lecturas devuelven copias, igual que una
// fila escaneada de la BD: mutar lo leído no persiste hasta llamar Update.
type MemStore struct {
	mu            sync.RWMutex
	products      map[string]entity.Product
	materials     map[string]entity.RawMaterial
	recipes       map[string]entity.Recipe
	productOrder  []string
	materialOrder []string
	recipeOrder   []string
}

func NewMemStore() *MemStore {
	return &MemStore{
		products:  make(map[string]entity.Product),
		materials: make(map[string]entity.RawMaterial),
		recipes:   make(map[string]entity.Recipe),
	}
}

// snapshot copia el estado completo para poder simular Rollback.
func (s *MemStore) Snapshot() *MemStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := NewMemStore()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.materials {
		c.materials[k] = v
	}
	for k, v := range s.recipes {
		c.recipes[k] = v
	}
	c.productOrder = append([]string(nil), s.productOrder...)
	c.materialOrder = append([]string(nil), s.materialOrder...)
	c.recipeOrder = append([]string(nil), s.recipeOrder...)
	return c
}

func (s *MemStore) Restore(from *MemStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = from.products
	s.materials = from.materials
	s.recipes = from.recipes
	s.productOrder = from.productOrder
	s.materialOrder = from.materialOrder
	s.recipeOrder = from.recipeOrder
}

// ── Repositorios sobre MemStore ──────────────────────────────────────────────

type ProductRepo struct{ S *MemStore }
type MaterialRepo struct{ S *MemStore }
type RecipeRepo struct{ S *MemStore }

var _ repository.ProductRepository = ProductRepo{}
var _ repository.RawMaterialRepository = MaterialRepo{}
var _ repository.RecipeRepository = RecipeRepo{}

func (r ProductRepo) Create(p *entity.Product) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.products[p.ID] = *p
	r.S.productOrder = append(r.S.productOrder, p.ID)
	return nil
}

func (r ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	p, ok := r.S.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r ProductRepo) GetByCode(code string) (*entity.Product, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	for _, id := range r.S.productOrder {
		if p, ok := r.S.products[id]; ok && p.Code == code {
			return &p, nil
		}
	}
	return nil, nil
}

func (r ProductRepo) List() ([]*entity.Product, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	var list []*entity.Product
	for _, id := range r.S.productOrder {
		if p, ok := r.S.products[id]; ok {
			cp := p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r ProductRepo) Update(p *entity.Product) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.products[p.ID] = *p
	return nil
}

func (r ProductRepo) Delete(id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	delete(r.S.products, id)
	for rid, rec := range r.S.recipes {
		if rec.ProductID == id {
			delete(r.S.recipes, rid)
		}
	}
	return nil
}

func (r MaterialRepo) Create(m *entity.RawMaterial) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.materials[m.ID] = *m
	r.S.materialOrder = append(r.S.materialOrder, m.ID)
	return nil
}

func (r MaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	m, ok := r.S.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// GetForUpdate en memoria no bloquea filas; los tests son secuenciales.
func (r MaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	return r.GetByID(id)
}

func (r MaterialRepo) GetByCode(code string) (*entity.RawMaterial, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	for _, id := range r.S.materialOrder {
		if m, ok := r.S.materials[id]; ok && m.Code == code {
			return &m, nil
		}
	}
	return nil, nil
}

func (r MaterialRepo) List() ([]*entity.RawMaterial, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	var list []*entity.RawMaterial
	for _, id := range r.S.materialOrder {
		if m, ok := r.S.materials[id]; ok {
			cp := m
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r MaterialRepo) Update(m *entity.RawMaterial) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.materials[m.ID] = *m
	return nil
}

func (r MaterialRepo) Delete(id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	delete(r.S.materials, id)
	for rid, rec := range r.S.recipes {
		if rec.RawMaterialID == id {
			delete(r.S.recipes, rid)
		}
	}
	return nil
}

func (r RecipeRepo) Create(rec *entity.Recipe) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.recipes[rec.ID] = *rec
	r.S.recipeOrder = append(r.S.recipeOrder, rec.ID)
	return nil
}

func (r RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	rec, ok := r.S.recipes[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r RecipeRepo) List() ([]*entity.Recipe, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	var list []*entity.Recipe
	for _, id := range r.S.recipeOrder {
		if rec, ok := r.S.recipes[id]; ok {
			cp := rec
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r RecipeRepo) ListByProduct(productID string) ([]*entity.Recipe, error) {
	all, _ := r.List()
	var list []*entity.Recipe
	for _, rec := range all {
		if rec.ProductID == productID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (r RecipeRepo) Update(rec *entity.Recipe) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.recipes[rec.ID] = *rec
	return nil
}

func (r RecipeRepo) Delete(id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	delete(r.S.recipes, id)
	return nil
}

// TxRunner simula la transacción del almacén: snapshot antes de fn y
// restauración completa si fn falla (Rollback todo-o-nada).
type TxRunner struct{ S *MemStore }

func (t TxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
	recipeRepo repository.RecipeRepository,
) error) error {
	before := t.S.Snapshot()
	if err := fn(ProductRepo{t.S}, MaterialRepo{t.S}, RecipeRepo{t.S}); err != nil {
		t.S.Restore(before)
		return err
	}
	return nil
}

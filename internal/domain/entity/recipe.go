package entity

import "time"

// Recipe es una fila de la lista de materiales: producir una unidad de
// ProductID consume RequiredQuantity unidades de RawMaterialID.
// Un producto puede tener cero, una o muchas filas (una por materia prima);
// una materia prima puede aparecer en recetas de varios productos.
type Recipe struct {
	ID               string
	ProductID        string
	RawMaterialID    string
	RequiredQuantity int // estrictamente positivo
	CreatedAt        time.Time
}

package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve el producto sin importar IsActive; (nil, nil) si no existe.
	GetByID(id string) (*entity.Product, error)
	// ListActive devuelve solo productos activos, en orden de almacenamiento (created_at).
	ListActive() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}

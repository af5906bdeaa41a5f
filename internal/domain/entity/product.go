package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory categoría asignada cuando el cliente no envía una.
const DefaultCategory = "general"

// Product representa un artículo del catálogo de la tienda.
// Quantity es informativo para la página pública (0 = agotado), no dispara
// borrado ni desactivación. Image es un blob base64 inline, opcional.
type Product struct {
	ID          string
	Name        string          // requerido, <= 100 caracteres
	Description string          // <= 500 caracteres
	Size        string          // etiqueta de talla/medida, <= 50 caracteres
	Price       decimal.Decimal // >= 0, requerido
	Quantity    int             // >= 0, default 0
	Image       string          // base64 inline; vacío = sin imagen
	Category    string          // default "general"
	SKU         string          // opcional; único solo cuando existe (sparse)
	IsActive    bool            // inactivos quedan fuera del listado público
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

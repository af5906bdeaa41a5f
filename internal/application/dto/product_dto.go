package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest cuerpo de create y update de producto. Update es un reemplazo
// completo de los campos editables: lo que el cliente omite vuelve a su default.
type ProductRequest struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	Size        string           `json:"size" validate:"omitempty,max=50"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    *int             `json:"quantity"` // ausente o negativo -> 0
	Image       string           `json:"image"`    // base64 inline, opcional
	Category    string           `json:"category" validate:"omitempty,max=100"`
	SKU         string           `json:"sku" validate:"omitempty,max=100"`
	IsActive    *bool            `json:"is_active"` // ausente -> true
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Size        string          `json:"size"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category"`
	SKU         string          `json:"sku,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DeleteProductResponse confirmación de borrado con el registro eliminado.
type DeleteProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

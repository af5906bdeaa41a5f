package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// ProductUseCase reglas de negocio del catálogo.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	maxImageSize int // bytes
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository, maxImageSize int) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, maxImageSize: maxImageSize}
}

// List devuelve los productos activos (página pública del catálogo).
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID devuelve un producto por id, activo o no.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := uc.fromRequest(in)
	product.ID = uuid.New().String()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza por completo los campos editables del producto: los campos
// opcionales omitidos por el cliente vuelven a su default, no se conservan.
// CreatedAt se preserva; UpdatedAt se refresca.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	product := uc.fromRequest(in)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto (hard delete) y devuelve el registro borrado.
func (uc *ProductUseCase) Delete(id string) (*dto.ProductResponse, error) {
	existing, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return nil, err
	}
	return toProductResponse(existing), nil
}

// validate aplica las reglas comunes de create/update: precio no negativo y
// tamaño de imagen dentro del límite configurado.
func (uc *ProductUseCase) validate(in dto.ProductRequest) error {
	if in.Name == "" || in.Price == nil {
		return domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if uc.maxImageSize > 0 && len(in.Image) > uc.maxImageSize {
		return domain.ErrPayloadTooLarge
	}
	return nil
}

// fromRequest materializa la entidad aplicando defaults: quantity ausente o
// negativa -> 0, category vacía -> "general", is_active ausente -> true.
func (uc *ProductUseCase) fromRequest(in dto.ProductRequest) *entity.Product {
	quantity := 0
	if in.Quantity != nil && *in.Quantity > 0 {
		quantity = *in.Quantity
	}
	category := in.Category
	if category == "" {
		category = entity.DefaultCategory
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	return &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Size:        in.Size,
		Price:       *in.Price,
		Quantity:    quantity,
		Image:       in.Image,
		Category:    category,
		SKU:         in.SKU,
		IsActive:    isActive,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Size:        p.Size,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Image:       p.Image,
		Category:    p.Category,
		SKU:         p.SKU,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

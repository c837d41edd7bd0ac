package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Drogueria-api/internal/application/dto"
	"github.com/jhoicas/Drogueria-api/internal/domain"
	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
	"github.com/jhoicas/Drogueria-api/internal/domain/repository"
)

const expiryDateLayout = "2006-01-02"

// ProductUseCase casos de uso CRUD del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := parseExpiryDate(in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Category:      in.Category,
		Manufacturer:  in.Manufacturer,
		BatchNumber:   in.BatchNumber,
		ExpiryDate:    expiry,
		CurrentStock:  in.CurrentStock,
		MinStockLevel: in.MinStockLevel,
		UnitPrice:     in.UnitPrice,
		SellingPrice:  in.SellingPrice,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos (más recientes primero).
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto; devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial; devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Manufacturer != nil {
		product.Manufacturer = *in.Manufacturer
	}
	if in.BatchNumber != nil {
		product.BatchNumber = *in.BatchNumber
	}
	if in.ExpiryDate != nil {
		expiry, err := parseExpiryDate(*in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.ExpiryDate = expiry
	}
	if in.CurrentStock != nil {
		product.CurrentStock = *in.CurrentStock
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Las ventas históricas conservan sus snapshots.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func parseExpiryDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(expiryDateLayout, s, time.Local)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	expiry := ""
	if !p.ExpiryDate.IsZero() {
		expiry = p.ExpiryDate.Format(expiryDateLayout)
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Manufacturer:  p.Manufacturer,
		BatchNumber:   p.BatchNumber,
		ExpiryDate:    expiry,
		CurrentStock:  p.CurrentStock,
		MinStockLevel: p.MinStockLevel,
		UnitPrice:     p.UnitPrice,
		SellingPrice:  p.SellingPrice,
		Description:   p.Description,
		LowStock:      p.IsLowStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// ExpiryDate en formato YYYY-MM-DD. UnitPrice es el costo; SellingPrice el
// precio de venta al público.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Category      string          `json:"category"`
	Manufacturer  string          `json:"manufacturer"`
	BatchNumber   string          `json:"batch_number"`
	ExpiryDate    string          `json:"expiry_date"`
	CurrentStock  int             `json:"current_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Description   string          `json:"description"`
}

// UpdateProductRequest entrada para actualización parcial (solo campos presentes).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	Manufacturer  *string          `json:"manufacturer"`
	BatchNumber   *string          `json:"batch_number"`
	ExpiryDate    *string          `json:"expiry_date"`
	CurrentStock  *int             `json:"current_stock"`
	MinStockLevel *int             `json:"min_stock_level"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	Description   *string          `json:"description"`
}

// ProductResponse salida de un producto. LowStock se deriva del stock actual
// contra el umbral mínimo.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Manufacturer  string          `json:"manufacturer"`
	BatchNumber   string          `json:"batch_number"`
	ExpiryDate    string          `json:"expiry_date"`
	CurrentStock  int             `json:"current_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Description   string          `json:"description"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

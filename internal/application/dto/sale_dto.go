package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleItemRequest una línea de la venta. ProductName y UnitPrice son
// opcionales: si el producto existe en el catálogo se toman de él (UnitPrice
// del precio de venta vigente); un unit_price > 0 en la petición tiene prioridad.
type CreateSaleItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest entrada para registrar una venta.
// PaymentMethod ∈ {cash, card, digital}; vacío equivale a cash.
type CreateSaleRequest struct {
	ClientID      string                  `json:"client_id" validate:"required"`
	ClientName    string                  `json:"client_name"`
	Items         []CreateSaleItemRequest `json:"items" validate:"required,min=1"`
	Discount      decimal.Decimal         `json:"discount"`
	PaymentMethod string                  `json:"payment_method"`
}

// SaleItemResponse una línea persistida de la venta.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleResponse salida de una venta con sus ítems.
type SaleResponse struct {
	ID            string             `json:"id"`
	ClientID      string             `json:"client_id"`
	ClientName    string             `json:"client_name"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Discount      decimal.Decimal    `json:"discount"`
	FinalAmount   decimal.Decimal    `json:"final_amount"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
}

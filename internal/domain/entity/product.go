package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un medicamento o artículo del inventario de la droguería.
// UnitPrice es el costo de compra; SellingPrice el precio de venta al público.
// El stock se descuenta al registrar cada venta y puede editarse directamente.
type Product struct {
	ID            string
	Name          string
	Category      string
	Manufacturer  string
	BatchNumber   string // lote del fabricante
	ExpiryDate    time.Time
	CurrentStock  int
	MinStockLevel int
	UnitPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el stock actual cayó al umbral mínimo configurado.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStockLevel
}

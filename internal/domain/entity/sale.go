package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en el punto de venta.
const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentDigital = "digital"
)

// ValidPaymentMethod verifica que el método de pago sea uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentDigital:
		return true
	}
	return false
}

// Sale representa una venta de mostrador. ClientName es una copia del nombre
// del cliente al momento de la venta: un cambio de nombre posterior no altera
// las ventas históricas. FinalAmount = TotalAmount - Discount.
// Las ventas solo se crean; no hay edición ni borrado de ventas.
type Sale struct {
	ID            string
	ClientID      string
	ClientName    string
	Items         []SaleItem
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	FinalAmount   decimal.Decimal
	PaymentMethod string
	CreatedAt     time.Time
}

// SaleItem es una línea de la venta. ProductName y UnitPrice son copias del
// producto al momento de la venta (precio de venta vigente); la eliminación
// posterior del producto no altera el snapshot. TotalPrice = Quantity * UnitPrice.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

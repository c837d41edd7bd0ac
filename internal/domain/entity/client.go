package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente de la droguería.
// TotalPurchases y LastPurchaseDate se mantienen de forma incremental al
// registrar cada venta; no se recalculan desde el historial.
type Client struct {
	ID               string
	Name             string
	Email            string // único
	Phone            string
	Address          string
	TotalPurchases   decimal.Decimal
	LastPurchaseDate *time.Time
	CreatedAt        time.Time
}

package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
// El borrado cascadea a las ventas del cliente.
// GetByID y GetByEmail devuelven (nil, nil) si el cliente no existe.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	UpdatePurchases(clientID string, total decimal.Decimal, last time.Time) error
	Delete(id string) error
}

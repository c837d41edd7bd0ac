package repository

import "github.com/jhoicas/Drogueria-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Create inserta la cabecera y sus ítems como un lote dependiente: si alguna
// inserción falla, no queda nada persistido. List devuelve las ventas con sus
// ítems, ordenadas por fecha de creación descendente.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
}

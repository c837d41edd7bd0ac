package repository

import "github.com/jhoicas/Drogueria-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// List devuelve todos los productos ordenados por fecha de creación descendente.
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int) error
	Delete(id string) error
}

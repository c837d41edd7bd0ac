package usecase

import (
	"fmt"

	"github.com/jhoicas/Drogueria-api/internal/application/dto"
	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
	"github.com/jhoicas/Drogueria-api/internal/domain/repository"
)

// collections las tres colecciones completas que consume el motor de métricas.
type collections struct {
	products []*entity.Product
	clients  []*entity.Client
	sales    []*entity.Sale
}

// loadCollections trae productos, clientes y ventas en paralelo
// (tres listados independientes contra la base de datos).
func loadCollections(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
) (*collections, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type clientsResult struct {
		list []*entity.Client
		err  error
	}
	type salesResult struct {
		list []*entity.Sale
		err  error
	}

	productsCh := make(chan productsResult, 1)
	clientsCh := make(chan clientsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		list, err := productRepo.List()
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := clientRepo.List()
		clientsCh <- clientsResult{list, err}
	}()
	go func() {
		list, err := saleRepo.List()
		salesCh <- salesResult{list, err}
	}()

	products := <-productsCh
	clients := <-clientsCh
	sales := <-salesCh

	if products.err != nil {
		return nil, fmt.Errorf("listar productos: %w", products.err)
	}
	if clients.err != nil {
		return nil, fmt.Errorf("listar clientes: %w", clients.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("listar ventas: %w", sales.err)
	}

	return &collections{
		products: products.list,
		clients:  clients.list,
		sales:    sales.list,
	}, nil
}

// toSaleDTO mapea una venta de dominio a su DTO de respuesta.
func toSaleDTO(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		ClientName:    s.ClientName,
		Items:         items,
		TotalAmount:   s.TotalAmount,
		Discount:      s.Discount,
		FinalAmount:   s.FinalAmount,
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.CreatedAt,
	}
}

// Package sales contiene los casos de uso del punto de venta: registro de la
// venta, consulta del historial y tirilla PDF.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Drogueria-api/internal/application/dto"
	"github.com/jhoicas/Drogueria-api/internal/domain"
	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
	"github.com/jhoicas/Drogueria-api/internal/domain/repository"
)

// CreateSaleUseCase registra una venta y aplica sus efectos colaterales:
// descuento de stock por ítem y acumulado de compras del cliente.
//
// La cadena es secuencial y de mejor esfuerzo: solo la inserción de la venta
// con sus ítems es atómica; los descuentos de stock y la actualización del
// cliente se emiten uno tras otro sin rollback. Un fallo a mitad de cadena
// propaga el error dejando aplicados los pasos anteriores.
type CreateSaleUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{saleRepo: saleRepo, productRepo: productRepo, clientRepo: clientRepo}
}

// CreateSale valida la petición, arma la venta con snapshots de producto y
// cliente, la persiste y emite las actualizaciones colaterales en secuencia.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	// Snapshot del cliente. Puede no existir: la venta igual se registra con
	// el nombre que venga en la petición y el paso 3 se salta en silencio.
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	clientName := in.ClientName
	if client != nil {
		clientName = client.Name
	}

	now := time.Now()
	saleID := uuid.New().String()

	// Snapshot de productos: nombre y precio de venta al momento de la venta.
	// Un producto ausente del catálogo conserva los datos de la petición.
	productsByID := make(map[string]*entity.Product, len(in.Items))
	items := make([]entity.SaleItem, 0, len(in.Items))
	var totalAmount decimal.Decimal
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		name := it.ProductName
		unitPrice := it.UnitPrice
		if product != nil {
			productsByID[product.ID] = product
			if name == "" {
				name = product.Name
			}
			if !unitPrice.IsPositive() {
				unitPrice = product.SellingPrice
			}
		}
		totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      saleID,
			ProductID:   it.ProductID,
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  totalPrice,
		})
		totalAmount = totalAmount.Add(totalPrice)
	}

	sale := &entity.Sale{
		ID:            saleID,
		ClientID:      in.ClientID,
		ClientName:    clientName,
		Items:         items,
		TotalAmount:   totalAmount,
		Discount:      in.Discount,
		FinalAmount:   totalAmount.Sub(in.Discount),
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
	}

	// 1) Persistir la venta con sus ítems. Si falla, la operación completa
	// aborta sin efectos.
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("registrar venta: %w", err)
	}

	// 2) Descontar stock por cada ítem, en secuencia. El nuevo valor parte
	// del snapshot leído arriba (read-modify-write, sin piso en cero: el
	// stock negativo queda visible como señal de sobreventa). Un producto
	// ya eliminado se salta en silencio.
	for _, item := range sale.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			continue
		}
		newStock := product.CurrentStock - item.Quantity
		if err := uc.productRepo.UpdateStock(product.ID, newStock); err != nil {
			return nil, fmt.Errorf("descontar stock del producto %s: %w", product.ID, err)
		}
	}

	// 3) Acumular el total de compras y la fecha de última compra del cliente.
	if client != nil {
		newTotal := client.TotalPurchases.Add(sale.FinalAmount)
		if err := uc.clientRepo.UpdatePurchases(client.ID, newTotal, sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("actualizar compras del cliente %s: %w", client.ID, err)
		}
	}

	return toSaleResponse(sale), nil
}

// ListSales devuelve el historial completo de ventas, más recientes primero.
func (uc *CreateSaleUseCase) ListSales(ctx context.Context) ([]*dto.SaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// GetSale obtiene una venta por ID; devuelve (nil, nil) si no existe.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil || sale == nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
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
	return &dto.SaleResponse{
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

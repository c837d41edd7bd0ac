package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Drogueria-api/internal/application/dto"
	"github.com/jhoicas/Drogueria-api/internal/domain/metrics"
	"github.com/jhoicas/Drogueria-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de KPIs del panel principal.
//
// Trae las tres colecciones completas del repositorio y delega el cálculo al
// motor de métricas (funciones puras); aquí solo se orquesta y se mapea a DTO.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	saleRepo    repository.SaleRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, clientRepo: clientRepo, saleRepo: saleRepo}
}

// GetSummary construye el DashboardSummaryDTO con corte en el instante actual.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	cols, err := loadCollections(uc.productRepo, uc.clientRepo, uc.saleRepo)
	if err != nil {
		return nil, err
	}

	summary := metrics.Dashboard(cols.products, cols.clients, cols.sales, time.Now())

	recent := make([]dto.SaleResponse, 0, len(summary.RecentSales))
	for _, s := range summary.RecentSales {
		recent = append(recent, toSaleDTO(s))
	}
	top := make([]dto.TopProductDTO, 0, len(summary.TopProducts))
	for _, p := range summary.TopProducts {
		top = append(top, dto.TopProductDTO{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			QuantitySold: p.QuantitySold,
			Revenue:      p.Revenue.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:    summary.TotalProducts,
		TotalClients:     summary.TotalClients,
		LowStockProducts: summary.LowStockProducts,
		TotalSales:       summary.TotalSales.Round(2),
		TodaySales:       summary.TodaySales.Round(2),
		AvgDailySales:    summary.AvgDailySales.Round(2),
		AvgMonthlySales:  summary.AvgMonthlySales.Round(2),
		AvgYearlySales:   summary.AvgYearlySales.Round(2),
		RecentSales:      recent,
		TopProducts:      top,
	}, nil
}

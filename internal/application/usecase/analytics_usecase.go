package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Drogueria-api/internal/application/dto"
	"github.com/jhoicas/Drogueria-api/internal/domain"
	"github.com/jhoicas/Drogueria-api/internal/domain/metrics"
	"github.com/jhoicas/Drogueria-api/internal/domain/repository"
)

const defaultAnalyticsPeriod = 30 // días

// AnalyticsUseCase genera el reporte de analítica para un período móvil
// (7/30/90/365 días hacia atrás desde el instante actual).
type AnalyticsUseCase struct {
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	saleRepo    repository.SaleRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{productRepo: productRepo, clientRepo: clientRepo, saleRepo: saleRepo}
}

// GetReport construye el AnalyticsReportDTO del período pedido.
// Un período fuera de {7, 30, 90, 365} devuelve ErrInvalidInput; 0 usa el default.
func (uc *AnalyticsUseCase) GetReport(ctx context.Context, req dto.AnalyticsRequest) (*dto.AnalyticsReportDTO, error) {
	period := req.Period
	if period == 0 {
		period = defaultAnalyticsPeriod
	}
	if !metrics.ValidPeriod(period) {
		return nil, domain.ErrInvalidInput
	}

	cols, err := loadCollections(uc.productRepo, uc.clientRepo, uc.saleRepo)
	if err != nil {
		return nil, err
	}

	report := metrics.Analytics(cols.products, cols.clients, cols.sales, period, time.Now())

	topProducts := make([]dto.ProductPerformanceDTO, 0, len(report.TopProducts))
	for _, p := range report.TopProducts {
		topProducts = append(topProducts, dto.ProductPerformanceDTO{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			Revenue:     p.Revenue.Round(2),
			Profit:      p.Profit.Round(2),
		})
	}
	topClients := make([]dto.ClientPerformanceDTO, 0, len(report.TopClients))
	for _, c := range report.TopClients {
		topClients = append(topClients, dto.ClientPerformanceDTO{
			ClientID:   c.ClientID,
			ClientName: c.ClientName,
			Orders:     c.Orders,
			Revenue:    c.Revenue.Round(2),
			AvgOrder:   c.AvgOrder.Round(2),
		})
	}
	trend := make([]dto.MonthlyTrendDTO, 0, len(report.MonthlyTrend))
	for _, m := range report.MonthlyTrend {
		trend = append(trend, dto.MonthlyTrendDTO{
			Month:   m.Month,
			Revenue: m.Revenue.Round(2),
			Orders:  m.Orders,
		})
	}

	return &dto.AnalyticsReportDTO{
		PeriodDays:        report.PeriodDays,
		TotalRevenue:      report.TotalRevenue.Round(2),
		TotalOrders:       report.TotalOrders,
		AvgSaleValue:      report.AvgSaleValue.Round(2),
		AvgDailyRevenue:   report.AvgDailyRevenue.Round(2),
		AvgWeeklyRevenue:  report.AvgWeeklyRevenue.Round(2),
		AvgMonthlyRevenue: report.AvgMonthlyRevenue.Round(2),
		AvgYearlyRevenue:  report.AvgYearlyRevenue.Round(2),
		TopProducts:       topProducts,
		TopClients:        topClients,
		MonthlyTrend:      trend,
	}, nil
}

package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los montos van redondeados a 2 decimales.
type DashboardSummaryDTO struct {
	TotalProducts    int `json:"total_products"`
	TotalClients     int `json:"total_clients"`
	LowStockProducts int `json:"low_stock_products"`

	TotalSales decimal.Decimal `json:"total_sales"` // histórico completo
	TodaySales decimal.Decimal `json:"today_sales"`

	AvgDailySales   decimal.Decimal `json:"avg_daily_sales"`   // mes en curso / día del mes
	AvgMonthlySales decimal.Decimal `json:"avg_monthly_sales"` // año en curso / meses transcurridos
	AvgYearlySales  decimal.Decimal `json:"avg_yearly_sales"`  // acumulado del año

	// Últimas 5 ventas (más reciente primero) y top 5 productos por cantidad vendida
	RecentSales []SaleResponse  `json:"recent_sales"`
	TopProducts []TopProductDTO `json:"top_products"`
}

// TopProductDTO resumen de un producto para el widget de más vendidos.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

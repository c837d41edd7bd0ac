package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// AnalyticsRequest parámetros para GET /api/analytics.
type AnalyticsRequest struct {
	Period int `query:"period"` // días hacia atrás: 7, 30, 90 o 365 (default 30)
}

// ── Respuesta ─────────────────────────────────────────────────────────────────

// ProductPerformanceDTO agregado por producto dentro del período.
type ProductPerformanceDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"` // contra el costo actual del catálogo
}

// ClientPerformanceDTO agregado por cliente dentro del período.
type ClientPerformanceDTO struct {
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Orders     int             `json:"orders"`
	Revenue    decimal.Decimal `json:"revenue"`
	AvgOrder   decimal.Decimal `json:"avg_order"` // revenue / orders
}

// MonthlyTrendDTO ingresos y ventas de un mes calendario ("YYYY-MM").
type MonthlyTrendDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// AnalyticsReportDTO respuesta completa de GET /api/analytics.
// Los promedios semanal/mensual/anual son extrapolaciones lineales del diario.
type AnalyticsReportDTO struct {
	PeriodDays        int                     `json:"period_days"`
	TotalRevenue      decimal.Decimal         `json:"total_revenue"`
	TotalOrders       int                     `json:"total_orders"`
	AvgSaleValue      decimal.Decimal         `json:"avg_sale_value"`
	AvgDailyRevenue   decimal.Decimal         `json:"avg_daily_revenue"`
	AvgWeeklyRevenue  decimal.Decimal         `json:"avg_weekly_revenue"`  // diario x 7
	AvgMonthlyRevenue decimal.Decimal         `json:"avg_monthly_revenue"` // diario x 30
	AvgYearlyRevenue  decimal.Decimal         `json:"avg_yearly_revenue"`  // diario x 365
	TopProducts       []ProductPerformanceDTO `json:"top_products"`        // top 10 por ingreso
	TopClients        []ClientPerformanceDTO  `json:"top_clients"`         // top 10 por ingreso
	MonthlyTrend      []MonthlyTrendDTO       `json:"monthly_trend"`       // ascendente por mes
}

// Package metrics implementa el motor de métricas del panel: funciones puras
// que derivan los KPIs del dashboard y los agregados de analítica a partir de
// las colecciones completas de productos, clientes y ventas. No tiene estado
// ni efectos: el mismo insumo produce siempre el mismo resultado.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
)

const (
	dashboardRecentSales = 5 // ventas recientes en el widget del dashboard
	dashboardTopProducts = 5 // productos más vendidos en el widget del dashboard
)

// ProductSales acumulado de un producto para el widget de más vendidos.
// ProductName conserva el último nombre visto entre los ítems del producto.
type ProductSales struct {
	ProductID    string
	ProductName  string
	QuantitySold int
	Revenue      decimal.Decimal
}

// DashboardSummary KPIs del panel principal.
type DashboardSummary struct {
	TotalProducts    int
	TotalClients     int
	LowStockProducts int
	TotalSales       decimal.Decimal // histórico completo, sin recorte de período
	TodaySales       decimal.Decimal
	AvgDailySales    decimal.Decimal
	AvgMonthlySales  decimal.Decimal
	AvgYearlySales   decimal.Decimal
	RecentSales      []*entity.Sale
	TopProducts      []ProductSales
}

// Dashboard calcula el resumen del panel a partir de las colecciones completas.
// "now" define los cortes de hoy, mes en curso y año en curso (hora local).
// Colecciones vacías producen ceros y listas vacías, nunca error.
func Dashboard(products []*entity.Product, clients []*entity.Client, sales []*entity.Sale, now time.Time) DashboardSummary {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	lowStock := 0
	for _, p := range products {
		if p.IsLowStock() {
			lowStock++
		}
	}

	var total, todaySum, monthSum, yearSum decimal.Decimal
	for _, s := range sales {
		total = total.Add(s.FinalAmount)
		if !s.CreatedAt.Before(today) {
			todaySum = todaySum.Add(s.FinalAmount)
		}
		if !s.CreatedAt.Before(monthStart) {
			monthSum = monthSum.Add(s.FinalAmount)
		}
		if !s.CreatedAt.Before(yearStart) {
			yearSum = yearSum.Add(s.FinalAmount)
		}
	}

	avgDaily := decimal.Zero
	if day := now.Day(); day > 0 {
		avgDaily = monthSum.Div(decimal.NewFromInt(int64(day)))
	}

	// Promedio mensual: suma del año dividida por los meses transcurridos.
	// En enero (índice de mes 0) se devuelve la suma anual tal cual.
	avgMonthly := yearSum
	if monthIndex := int(now.Month()) - 1; monthIndex > 0 {
		avgMonthly = yearSum.Div(decimal.NewFromInt(int64(monthIndex + 1)))
	}

	return DashboardSummary{
		TotalProducts:    len(products),
		TotalClients:     len(clients),
		LowStockProducts: lowStock,
		TotalSales:       total,
		TodaySales:       todaySum,
		AvgDailySales:    avgDaily,
		AvgMonthlySales:  avgMonthly,
		AvgYearlySales:   yearSum, // acumulado del año, no una proyección anualizada
		RecentSales:      recentSales(sales, dashboardRecentSales),
		TopProducts:      topProducts(sales, dashboardTopProducts),
	}
}

// recentSales devuelve las n ventas más recientes sin mutar la colección de entrada.
func recentSales(sales []*entity.Sale, n int) []*entity.Sale {
	sorted := make([]*entity.Sale, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// topProducts agrupa los ítems de todas las ventas por producto y devuelve
// los n con mayor cantidad vendida.
func topProducts(sales []*entity.Sale, n int) []ProductSales {
	acc := make(map[string]*ProductSales)
	for _, s := range sales {
		for _, it := range s.Items {
			ps, ok := acc[it.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: it.ProductID}
				acc[it.ProductID] = ps
			}
			ps.ProductName = it.ProductName
			ps.QuantitySold += it.Quantity
			ps.Revenue = ps.Revenue.Add(it.TotalPrice)
		}
	}

	list := make([]ProductSales, 0, len(acc))
	for _, ps := range acc {
		list = append(list, *ps)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].QuantitySold != list[j].QuantitySold {
			return list[i].QuantitySold > list[j].QuantitySold
		}
		return list[i].ProductID < list[j].ProductID // desempate estable entre ejecuciones
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}
